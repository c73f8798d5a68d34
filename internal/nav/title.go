package nav

import (
	"fmt"
	"strings"

	"dws-console/internal/model"
)

const defaultTitle = "DWS"

// TitleForScreen returns the header title. It is total over every screen and role;
// anything unrecognized gets the product name.
func TitleForScreen(s Screen, sel Selection, r model.Role) string {
	switch s {
	case ScreenDashboard:
		switch r {
		case model.RoleProjectManager:
			return "Project Manager Dashboard"
		case model.RoleTeamMember:
			return "My Dashboard"
		case model.RoleBUAdmin:
			return "Business Unit Overview"
		default:
			return "Dashboard"
		}
	case ScreenSalesDashboard:
		return "Sales Dashboard"
	case ScreenProjectList:
		if r == model.RoleTeamOwner {
			return "Team Projects"
		}
		return "Projects"
	case ScreenProjectDetail:
		if p := sel.Project; p != nil && strings.TrimSpace(p.Name) != "" {
			if strings.TrimSpace(p.Company) == "" {
				return p.Name
			}
			return fmt.Sprintf("%s (%s)", p.Name, p.Company)
		}
		return "Project Details"
	case ScreenTaskList:
		return "Tasks"
	case ScreenTaskDetail:
		return taskTitle(sel.Task, "Task Details")
	case ScreenTaskReview:
		if t := sel.Task; t != nil && strings.TrimSpace(t.Name) != "" {
			return "Review: " + t.Name
		}
		return "Task Review"
	case ScreenCreateTask:
		return "Create Task"
	case ScreenSubtaskDetail:
		if st := sel.Subtask; st != nil && strings.TrimSpace(st.Name) != "" {
			return st.Name
		}
		return "Subtask Details"
	case ScreenDealList:
		if r == model.RoleSales {
			return "My Deals"
		}
		return "Deals"
	case ScreenDealDetail:
		return dealTitle(sel.Deal, "", "Deal Details")
	case ScreenCreateDeal:
		return "Create Deal"
	case ScreenDealHandoff:
		return dealTitle(sel.Deal, "Handoff: ", "Deal Handoff")
	case ScreenProjectSetup:
		return dealTitle(sel.Deal, "Project Setup: ", "Project Setup")
	case ScreenCompanies:
		return "Companies"
	case ScreenCreateCompany:
		return "Add Company"
	case ScreenAgencyList:
		return "Agencies"
	case ScreenCreateAgency:
		return "Add Agency"
	case ScreenTeamTasks:
		return "Team Tasks"
	case ScreenTeamLeadTaskDetail:
		return taskTitle(sel.Task, "Team Task Details")
	case ScreenTeamOwnerDashboard:
		return "Team Owner Dashboard"
	case ScreenTeamOwnerProjects:
		return "Team Projects"
	case ScreenReports:
		return "Reports"
	case ScreenCalendar:
		return "Calendar"
	case ScreenSettings:
		return "Settings"
	case ScreenTeamMemberDashboard:
		return "My Dashboard"
	case ScreenTeamMemberTasks:
		return "My Tasks"
	case ScreenTeamMemberTaskDetail:
		return taskTitle(sel.Task, "Task Details")
	case ScreenTeamMemberTimesheet:
		return "My Timesheet"
	}
	return defaultTitle
}

func taskTitle(t *model.Task, fallback string) string {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return fallback
	}
	return t.Name
}

func dealTitle(d *model.Deal, prefix, fallback string) string {
	if d == nil || strings.TrimSpace(d.DealName) == "" {
		return fallback
	}
	return prefix + d.DealName
}
