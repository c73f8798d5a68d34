package nav

import (
	"strings"

	"dws-console/internal/model"
)

// Screen identifies one renderable view.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenSalesDashboard
	ScreenProjectList
	ScreenProjectDetail
	ScreenTaskList
	ScreenTaskDetail
	ScreenTaskReview
	ScreenCreateTask
	ScreenSubtaskDetail
	ScreenDealList
	ScreenDealDetail
	ScreenCreateDeal
	ScreenDealHandoff
	ScreenProjectSetup
	ScreenCompanies
	ScreenCreateCompany
	ScreenAgencyList
	ScreenCreateAgency
	ScreenTeamTasks
	ScreenTeamLeadTaskDetail
	ScreenTeamOwnerDashboard
	ScreenTeamOwnerProjects
	ScreenReports
	ScreenCalendar
	ScreenSettings

	ScreenTeamMemberDashboard
	ScreenTeamMemberTasks
	ScreenTeamMemberTaskDetail
	ScreenTeamMemberTimesheet

	screenCount
)

var screenNames = [...]string{
	ScreenDashboard:            "dashboard",
	ScreenSalesDashboard:       "sales-dashboard",
	ScreenProjectList:          "project-list",
	ScreenProjectDetail:        "project-detail",
	ScreenTaskList:             "task-list",
	ScreenTaskDetail:           "task-detail",
	ScreenTaskReview:           "task-review",
	ScreenCreateTask:           "create-task",
	ScreenSubtaskDetail:        "subtask-detail",
	ScreenDealList:             "deal-list",
	ScreenDealDetail:           "deal-detail",
	ScreenCreateDeal:           "create-deal",
	ScreenDealHandoff:          "deal-handoff",
	ScreenProjectSetup:         "project-setup",
	ScreenCompanies:            "companies",
	ScreenCreateCompany:        "create-company",
	ScreenAgencyList:           "agency-list",
	ScreenCreateAgency:         "create-agency",
	ScreenTeamTasks:            "team-tasks",
	ScreenTeamLeadTaskDetail:   "team-lead-task-detail",
	ScreenTeamOwnerDashboard:   "team-owner-dashboard",
	ScreenTeamOwnerProjects:    "team-owner-projects",
	ScreenReports:              "reports",
	ScreenCalendar:             "calendar",
	ScreenSettings:             "settings",
	ScreenTeamMemberDashboard:  "team-member-dashboard",
	ScreenTeamMemberTasks:      "team-member-tasks",
	ScreenTeamMemberTaskDetail: "team-member-task-detail",
	ScreenTeamMemberTimesheet:  "team-member-timesheet",
}

// AllScreens returns every known screen in declaration order.
func AllScreens() []Screen {
	out := make([]Screen, 0, int(screenCount))
	for s := Screen(0); s < screenCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s Screen) Valid() bool { return s >= 0 && s < screenCount }

func (s Screen) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return screenNames[s]
}

func ParseScreen(name string) (Screen, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s := Screen(0); s < screenCount; s++ {
		if screenNames[s] == name {
			return s, true
		}
	}
	return 0, false
}

// TeamMemberScreen reports whether s belongs to the team member sub-registry.
func TeamMemberScreen(s Screen) bool {
	switch s {
	case ScreenTeamMemberDashboard, ScreenTeamMemberTasks, ScreenTeamMemberTaskDetail, ScreenTeamMemberTimesheet:
		return true
	}
	return false
}

// DefaultScreenForRole is the landing screen after login.
func DefaultScreenForRole(r model.Role) Screen {
	switch r {
	case model.RoleSales:
		return ScreenSalesDashboard
	case model.RoleTeamLead:
		return ScreenTeamTasks
	case model.RoleTeamOwner:
		return ScreenTeamOwnerDashboard
	case model.RoleTeamMember:
		return ScreenTeamMemberDashboard
	default:
		return ScreenDashboard
	}
}

// FallbackScreenForRole is rendered when the active screen is unknown or unhandled for r.
func FallbackScreenForRole(r model.Role) Screen {
	switch r {
	case model.RoleSales:
		return ScreenSalesDashboard
	case model.RoleTeamMember:
		return ScreenTeamMemberDashboard
	default:
		return ScreenDashboard
	}
}

// Selection holds the focused entities that parameterize detail screens.
// Pointers reference store entities; they are not owned.
type Selection struct {
	Project *model.Project
	Task    *model.Task
	Subtask *model.Subtask
	Deal    *model.Deal
}
