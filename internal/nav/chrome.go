package nav

import "dws-console/internal/model"

type HeaderVariant string

const (
	HeaderDefault   HeaderVariant = "default"
	HeaderSales     HeaderVariant = "sales"
	HeaderTeamOwner HeaderVariant = "teamOwner"
)

type Background string

const (
	BackgroundGray      Background = "gray"
	BackgroundLightGray Background = "light-gray"
	BackgroundWhite     Background = "white"
)

// Chrome is the layout around a screen's content.
type Chrome struct {
	ShowHeader    bool
	HeaderVariant HeaderVariant
	Background    Background
}

// Screens that draw their own heading.
var headerless = map[Screen]bool{
	ScreenCreateDeal:           true,
	ScreenCreateTask:           true,
	ScreenCreateCompany:        true,
	ScreenCreateAgency:         true,
	ScreenTaskReview:           true,
	ScreenProjectSetup:         true,
	ScreenTeamMemberTaskDetail: true,
}

func ChromeForScreen(s Screen, r model.Role) Chrome {
	return Chrome{
		ShowHeader:    !headerless[s],
		HeaderVariant: headerVariantForRole(r),
		Background:    backgroundFor(s, r),
	}
}

func headerVariantForRole(r model.Role) HeaderVariant {
	switch r {
	case model.RoleSales:
		return HeaderSales
	case model.RoleTeamOwner:
		return HeaderTeamOwner
	default:
		return HeaderDefault
	}
}

func backgroundFor(s Screen, r model.Role) Background {
	if r == model.RoleTeamOwner {
		return BackgroundWhite
	}
	if r == model.RoleProjectManager && s == ScreenDashboard {
		return BackgroundWhite
	}
	switch s {
	case ScreenTeamTasks, ScreenTeamLeadTaskDetail, ScreenDealHandoff:
		return BackgroundLightGray
	}
	if TeamMemberScreen(s) {
		return BackgroundLightGray
	}
	return BackgroundGray
}
