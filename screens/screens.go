package screens

// loginView is the visible representation of LoginScreen.
type loginView struct {
	Title         string
	UsernameField string
	PasswordField string
	SubmitLabel   string
}

// LoginScreen collects credentials from the user.
type LoginScreen struct {
	view *loginView
}

func NewLoginScreen() *LoginScreen {
	return &LoginScreen{}
}

func (s *LoginScreen) View() interface{} {
	if s.view == nil {
		s.view = &loginView{
			Title:         "Sign In",
			UsernameField: "",
			PasswordField: "",
			SubmitLabel:   "Log In",
		}
	}
	return s.view
}

func (s *LoginScreen) ViewLoaded() bool {
	return s.view != nil
}

func (s *LoginScreen) UnloadView() {
	s.view = nil
}

// homeView is the visible representation of HomeScreen.
type homeView struct {
	Title    string
	Sections []string
}

// HomeScreen is the landing screen shown after login.
type HomeScreen struct {
	view *homeView
}

func NewHomeScreen() *HomeScreen {
	return &HomeScreen{}
}

func (s *HomeScreen) View() interface{} {
	if s.view == nil {
		s.view = &homeView{
			Title:    "Home",
			Sections: []string{"Activity", "Messages", "Profile"},
		}
	}
	return s.view
}

func (s *HomeScreen) ViewLoaded() bool {
	return s.view != nil
}

func (s *HomeScreen) UnloadView() {
	s.view = nil
}

// settingsView is the visible representation of SettingsScreen.
type settingsView struct {
	Title   string
	Toggles map[string]bool
}

// SettingsScreen lets the user adjust app preferences.
type SettingsScreen struct {
	view *settingsView
}

func NewSettingsScreen() *SettingsScreen {
	return &SettingsScreen{}
}

func (s *SettingsScreen) View() interface{} {
	if s.view == nil {
		s.view = &settingsView{
			Title: "Settings",
			Toggles: map[string]bool{
				"notifications": true,
				"dark_mode":     false,
			},
		}
	}
	return s.view
}

func (s *SettingsScreen) ViewLoaded() bool {
	return s.view != nil
}

func (s *SettingsScreen) UnloadView() {
	s.view = nil
}
