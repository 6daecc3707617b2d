package screens

import (
	"github.com/uiharness/vc-lifecycle-tests/vctest"
)

// One suite definition per screen. Each one only declares the screen type
// it tests; the check entries (testLoginScreenCreation and so on) are
// synthesized when the runner constructs the suite.

type LoginScreenSuite struct{}

func (LoginScreenSuite) ScreenTypeUnderTest() vctest.ScreenType {
	return vctest.ScreenType{
		Name: "LoginScreen",
		New:  func() vctest.Screen { return NewLoginScreen() },
	}
}

type HomeScreenSuite struct{}

func (HomeScreenSuite) ScreenTypeUnderTest() vctest.ScreenType {
	return vctest.ScreenType{
		Name: "HomeScreen",
		New:  func() vctest.Screen { return NewHomeScreen() },
	}
}

type SettingsScreenSuite struct{}

func (SettingsScreenSuite) ScreenTypeUnderTest() vctest.ScreenType {
	return vctest.ScreenType{
		Name: "SettingsScreen",
		New:  func() vctest.Screen { return NewSettingsScreen() },
	}
}

func init() {
	vctest.RegisterSuite(LoginScreenSuite{})
	vctest.RegisterSuite(HomeScreenSuite{})
	vctest.RegisterSuite(SettingsScreenSuite{})
}
