package perm

import (
	"errors"
	"fmt"

	"dws-console/internal/model"
	"dws-console/internal/nav"
)

var ErrNavigationDenied = errors.New("navigation denied")

type DeniedError struct {
	Role   model.Role
	Screen nav.Screen
}

func (e DeniedError) Error() string {
	return fmt.Sprintf("%s: %s may not open %s", ErrNavigationDenied, e.Role.Label(), e.Screen)
}

func (e DeniedError) Unwrap() error { return ErrNavigationDenied }

// Screens reachable from a sidebar entry without going back through the sidebar.
var children = map[nav.Screen][]nav.Screen{
	nav.ScreenProjectList:       {nav.ScreenProjectDetail, nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenSubtaskDetail, nav.ScreenCreateTask},
	nav.ScreenCalendar:          {nav.ScreenProjectDetail, nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenSubtaskDetail, nav.ScreenCreateTask},
	nav.ScreenTeamOwnerProjects: {nav.ScreenProjectDetail},
	nav.ScreenTaskList:          {nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenSubtaskDetail, nav.ScreenCreateTask},
	nav.ScreenDealList:          {nav.ScreenDealDetail, nav.ScreenDealHandoff, nav.ScreenProjectSetup, nav.ScreenCreateDeal},
	nav.ScreenCompanies:         {nav.ScreenCreateCompany},
	nav.ScreenAgencyList:        {nav.ScreenCreateAgency},
	nav.ScreenTeamTasks:         {nav.ScreenTeamLeadTaskDetail, nav.ScreenSubtaskDetail},
	nav.ScreenTeamMemberTasks:   {nav.ScreenTeamMemberTaskDetail},
}

// AllowedScreens returns the set of screens a role may open: its sidebar links,
// the detail and form screens under them, and its landing/fallback screens.
func AllowedScreens(r model.Role) map[nav.Screen]bool {
	out := map[nav.Screen]bool{
		nav.DefaultScreenForRole(r):  true,
		nav.FallbackScreenForRole(r): true,
	}
	for _, l := range nav.SidebarLinks(r) {
		out[l.Screen] = true
		for _, c := range children[l.Screen] {
			out[c] = true
		}
	}
	return out
}

// CanNavigate reports whether role r may open screen s.
// The sidebar only offers these screens; enforcement is opt-in at the console.
func CanNavigate(r model.Role, s nav.Screen) bool {
	if !s.Valid() {
		return false
	}
	return AllowedScreens(r)[s]
}

// CheckNavigate is CanNavigate as an error.
func CheckNavigate(r model.Role, s nav.Screen) error {
	if CanNavigate(r, s) {
		return nil
	}
	return DeniedError{Role: r, Screen: s}
}
