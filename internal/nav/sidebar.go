package nav

import "dws-console/internal/model"

// Link is one sidebar entry.
type Link struct {
	Label  string
	Screen Screen
}

var (
	linkDashboard = Link{Label: "Dashboard", Screen: ScreenDashboard}
	linkProjects  = Link{Label: "Projects", Screen: ScreenProjectList}
	linkTasks     = Link{Label: "Tasks", Screen: ScreenTaskList}
	linkDeals     = Link{Label: "Deals", Screen: ScreenDealList}
	linkCompanies = Link{Label: "Companies", Screen: ScreenCompanies}
	linkAgencies  = Link{Label: "Agencies", Screen: ScreenAgencyList}
	linkReports   = Link{Label: "Reports", Screen: ScreenReports}
	linkCalendar  = Link{Label: "Calendar", Screen: ScreenCalendar}
	linkSettings  = Link{Label: "Settings", Screen: ScreenSettings}
)

// SidebarLinks returns the navigation offered to a role, in display order.
func SidebarLinks(r model.Role) []Link {
	switch r {
	case model.RoleSales:
		return []Link{
			{Label: "Dashboard", Screen: ScreenSalesDashboard},
			linkDeals,
			{Label: "New Deal", Screen: ScreenCreateDeal},
			linkCompanies,
			linkAgencies,
			linkCalendar,
			linkSettings,
		}
	case model.RoleTeamLead:
		return []Link{
			{Label: "Team Tasks", Screen: ScreenTeamTasks},
			linkProjects,
			linkCalendar,
			linkSettings,
		}
	case model.RoleTeamOwner:
		return []Link{
			{Label: "Dashboard", Screen: ScreenTeamOwnerDashboard},
			{Label: "Team Projects", Screen: ScreenTeamOwnerProjects},
			linkTasks,
			linkReports,
			linkSettings,
		}
	case model.RoleTeamMember:
		return []Link{
			{Label: "Dashboard", Screen: ScreenTeamMemberDashboard},
			{Label: "My Tasks", Screen: ScreenTeamMemberTasks},
			{Label: "Timesheet", Screen: ScreenTeamMemberTimesheet},
		}
	case model.RoleQuality:
		return []Link{
			linkDashboard,
			linkProjects,
			linkTasks,
			linkReports,
		}
	case model.RoleBUAdmin, model.RoleSuperAdmin:
		return []Link{
			linkDashboard,
			linkProjects,
			linkTasks,
			linkDeals,
			linkCompanies,
			linkAgencies,
			linkReports,
			linkCalendar,
			linkSettings,
		}
	default:
		return []Link{
			linkDashboard,
			linkProjects,
			linkTasks,
			{Label: "New Task", Screen: ScreenCreateTask},
			linkDeals,
			linkCompanies,
			linkReports,
			linkCalendar,
			linkSettings,
		}
	}
}
