package pages

// DashboardPage is the landing page after login
type DashboardPage struct {
	*GeneralPage
}

func NewDashboardPage(s *Session) *DashboardPage {
	return &DashboardPage{GeneralPage: NewGeneralPage(s)}
}
