package nav

import (
	"testing"

	"dws-console/internal/model"
)

func TestScreenNamesRoundTrip(t *testing.T) {
	for _, s := range AllScreens() {
		name := s.String()
		if name == "" || name == "unknown" {
			t.Fatalf("screen %d has no name", s)
		}
		got, ok := ParseScreen(name)
		if !ok || got != s {
			t.Fatalf("ParseScreen(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseScreen("nope"); ok {
		t.Fatalf("expected unknown screen name to fail")
	}
	if got := Screen(999).String(); got != "unknown" {
		t.Fatalf("String() of invalid screen = %q", got)
	}
}

func TestDefaultScreenForRole(t *testing.T) {
	cases := []struct {
		role model.Role
		want Screen
	}{
		{model.RoleSales, ScreenSalesDashboard},
		{model.RoleTeamLead, ScreenTeamTasks},
		{model.RoleTeamOwner, ScreenTeamOwnerDashboard},
		{model.RoleTeamMember, ScreenTeamMemberDashboard},
		{model.RoleProjectManager, ScreenDashboard},
		{model.RoleQuality, ScreenDashboard},
		{model.Role("intern"), ScreenDashboard},
	}
	for _, tc := range cases {
		if got := DefaultScreenForRole(tc.role); got != tc.want {
			t.Fatalf("DefaultScreenForRole(%s) = %s, want %s", tc.role, got, tc.want)
		}
	}
}

func TestFallbackScreenForRole(t *testing.T) {
	if got := FallbackScreenForRole(model.RoleSales); got != ScreenSalesDashboard {
		t.Fatalf("sales fallback = %s", got)
	}
	if got := FallbackScreenForRole(model.RoleTeamMember); got != ScreenTeamMemberDashboard {
		t.Fatalf("team member fallback = %s", got)
	}
	if got := FallbackScreenForRole(model.RoleTeamLead); got != ScreenDashboard {
		t.Fatalf("team lead fallback = %s", got)
	}
}

func TestTitleForScreenIsTotal(t *testing.T) {
	roles := append([]model.Role{""}, model.Roles...)
	for _, r := range roles {
		for _, s := range AllScreens() {
			if got := TitleForScreen(s, Selection{}, r); got == "" {
				t.Fatalf("empty title for %s/%s", r, s)
			}
		}
		if got := TitleForScreen(Screen(-1), Selection{}, r); got != "DWS" {
			t.Fatalf("invalid screen title = %q", got)
		}
	}
}

func TestTitleForScreen(t *testing.T) {
	p := &model.Project{Name: "Brand Refresh", Company: "Acme Corp"}
	task := &model.Task{Name: "Logo Concepts"}
	d := &model.Deal{DealName: "Hooli Rebrand"}

	cases := []struct {
		name string
		s    Screen
		sel  Selection
		r    model.Role
		want string
	}{
		{"pm dashboard", ScreenDashboard, Selection{}, model.RoleProjectManager, "Project Manager Dashboard"},
		{"member dashboard", ScreenDashboard, Selection{}, model.RoleTeamMember, "My Dashboard"},
		{"bu dashboard", ScreenDashboard, Selection{}, model.RoleBUAdmin, "Business Unit Overview"},
		{"owner projects", ScreenProjectList, Selection{}, model.RoleTeamOwner, "Team Projects"},
		{"project detail", ScreenProjectDetail, Selection{Project: p}, model.RoleProjectManager, "Brand Refresh (Acme Corp)"},
		{"project detail empty", ScreenProjectDetail, Selection{}, model.RoleProjectManager, "Project Details"},
		{"review", ScreenTaskReview, Selection{Task: task}, model.RoleProjectManager, "Review: Logo Concepts"},
		{"review empty", ScreenTaskReview, Selection{}, model.RoleProjectManager, "Task Review"},
		{"sales deals", ScreenDealList, Selection{}, model.RoleSales, "My Deals"},
		{"handoff", ScreenDealHandoff, Selection{Deal: d}, model.RoleProjectManager, "Handoff: Hooli Rebrand"},
		{"setup", ScreenProjectSetup, Selection{Deal: d}, model.RoleProjectManager, "Project Setup: Hooli Rebrand"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TitleForScreen(tc.s, tc.sel, tc.r); got != tc.want {
				t.Fatalf("TitleForScreen = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChromeForScreen(t *testing.T) {
	cases := []struct {
		name string
		s    Screen
		r    model.Role
		want Chrome
	}{
		{"pm dashboard", ScreenDashboard, model.RoleProjectManager, Chrome{true, HeaderDefault, BackgroundWhite}},
		{"pm project list", ScreenProjectList, model.RoleProjectManager, Chrome{true, HeaderDefault, BackgroundGray}},
		{"sales create deal", ScreenCreateDeal, model.RoleSales, Chrome{false, HeaderSales, BackgroundGray}},
		{"owner anything", ScreenTaskList, model.RoleTeamOwner, Chrome{true, HeaderTeamOwner, BackgroundWhite}},
		{"lead team tasks", ScreenTeamTasks, model.RoleTeamLead, Chrome{true, HeaderDefault, BackgroundLightGray}},
		{"member task detail", ScreenTeamMemberTaskDetail, model.RoleTeamMember, Chrome{false, HeaderDefault, BackgroundLightGray}},
		{"handoff", ScreenDealHandoff, model.RoleProjectManager, Chrome{true, HeaderDefault, BackgroundLightGray}},
		{"review", ScreenTaskReview, model.RoleQuality, Chrome{false, HeaderDefault, BackgroundGray}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChromeForScreen(tc.s, tc.r); got != tc.want {
				t.Fatalf("ChromeForScreen = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSidebarLinksStartAtLanding(t *testing.T) {
	for _, r := range model.Roles {
		links := SidebarLinks(r)
		if len(links) == 0 {
			t.Fatalf("no links for %s", r)
		}
		if links[0].Screen != DefaultScreenForRole(r) {
			t.Fatalf("%s: first link %s, landing %s", r, links[0].Screen, DefaultScreenForRole(r))
		}
	}
}
