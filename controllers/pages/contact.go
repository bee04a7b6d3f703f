package pageController

type teamMember struct {
	Name  string
	Role  string
	Email string
}

// team is shown on the Contact Us page. Nothing is sent from the site, the page only
// tells visitors where to write.
func team(email string) []teamMember {
	return []teamMember{
		{Name: "Arka Sadhukhan", Role: "UI/UX Designer", Email: email},
		{Name: "Manami Manna", Role: "ML & Python Developer", Email: email},
		{Name: "Soumyajit Roy", Role: "Frontend & Backend Developer", Email: email},
	}
}
