package model

import "time"

type Role string

const (
	RoleProjectManager Role = "project_manager"
	RoleSales          Role = "sales"
	RoleTeamLead       Role = "team_lead"
	RoleTeamOwner      Role = "team_owner"
	RoleTeamMember     Role = "team_member"
	RoleBUAdmin        Role = "bu_admin"
	RoleSuperAdmin     Role = "super_admin"
	RoleQuality        Role = "quality"
)

// Roles lists every role in display order.
var Roles = []Role{
	RoleProjectManager,
	RoleSales,
	RoleTeamLead,
	RoleTeamOwner,
	RoleTeamMember,
	RoleBUAdmin,
	RoleSuperAdmin,
	RoleQuality,
}

func (r Role) Label() string {
	switch r {
	case RoleProjectManager:
		return "Project Manager"
	case RoleSales:
		return "Sales"
	case RoleTeamLead:
		return "Team Lead"
	case RoleTeamOwner:
		return "Team Owner"
	case RoleTeamMember:
		return "Team Member"
	case RoleBUAdmin:
		return "BU Admin"
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleQuality:
		return "Quality"
	default:
		return string(r)
	}
}

func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// User is the authenticated identity for one session.
type User struct {
	Username string `json:"username" yaml:"username"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Role     Role   `json:"role" yaml:"role"`
}

// DisplayName prefers the user's name over the login.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCompleted ProjectStatus = "Completed"
)

type ProjectHealth string

const (
	HealthOnTrack ProjectHealth = "On Track"
	HealthAtRisk  ProjectHealth = "At Risk"
	HealthDelayed ProjectHealth = "Delayed"
)

type Project struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Company     string        `json:"company" yaml:"company"`
	ServiceType string        `json:"serviceType" yaml:"serviceType"`
	Owner       string        `json:"owner" yaml:"owner"`
	TeamOwner   string        `json:"teamOwner" yaml:"teamOwner"`
	Status      ProjectStatus `json:"status" yaml:"status"`
	Health      ProjectHealth `json:"health" yaml:"health"`
	Progress    int           `json:"progress" yaml:"progress"`
	StartDate   string        `json:"startDate" yaml:"startDate"`
	EndDate     string        `json:"endDate" yaml:"endDate"`
	Budget      float64       `json:"budget" yaml:"budget"`
	DealID      *string       `json:"dealId,omitempty" yaml:"dealId,omitempty"`
}

type DealStatus string

const (
	DealNew                DealStatus = "New"
	DealDraft              DealStatus = "Draft"
	DealSubmittedToPM      DealStatus = "Submitted to PM"
	DealIntroCallScheduled DealStatus = "Intro Call Scheduled"
	DealIntroCallDone      DealStatus = "Intro Call Done"
	DealConverted          DealStatus = "Converted"
	DealOnHold             DealStatus = "On Hold"
)

type ServiceStatus string

const (
	ServiceNotConverted ServiceStatus = "Not Converted"
	ServiceReady        ServiceStatus = "Ready"
)

// ProjectConfiguration is what a PM fills in before a deal service can become a project.
type ProjectConfiguration struct {
	ProjectName string  `json:"projectName" yaml:"projectName"`
	Owner       string  `json:"owner" yaml:"owner"`
	TeamOwner   string  `json:"teamOwner" yaml:"teamOwner"`
	StartDate   string  `json:"startDate" yaml:"startDate"`
	EndDate     string  `json:"endDate" yaml:"endDate"`
	Budget      float64 `json:"budget" yaml:"budget"`
}

type ServiceInDeal struct {
	ID            string                `json:"id" yaml:"id"`
	ServiceType   string                `json:"serviceType" yaml:"serviceType"`
	Description   string                `json:"description,omitempty" yaml:"description,omitempty"`
	Budget        float64               `json:"budget" yaml:"budget"`
	Status        ServiceStatus         `json:"status" yaml:"status"`
	Configuration *ProjectConfiguration `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// Convertible reports whether the service may become a project.
func (s ServiceInDeal) Convertible() bool {
	return s.Status == ServiceReady && s.Configuration != nil
}

type ClientDetails struct {
	ContactName string `json:"contactName" yaml:"contactName"`
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

type Deal struct {
	ID            string          `json:"id" yaml:"id"`
	DealName      string          `json:"dealName" yaml:"dealName"`
	Company       string          `json:"company" yaml:"company"`
	ClientDetails ClientDetails   `json:"clientDetails" yaml:"clientDetails"`
	Services      []ServiceInDeal `json:"services" yaml:"services"`
	Status        DealStatus      `json:"status" yaml:"status"`
	Budget        float64         `json:"budget" yaml:"budget"`
	RiskLevel     string          `json:"riskLevel" yaml:"riskLevel"`
	Owner         string          `json:"owner" yaml:"owner"`
	Notes         string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt     string          `json:"createdAt" yaml:"createdAt"`
}

// TaskStatusSubmittedForReview routes a selected task to the review screen.
const TaskStatusSubmittedForReview = "Submitted for Review"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

type ExecutionStatus string

const (
	ExecutionNotStarted ExecutionStatus = "Not Started"
	ExecutionInProgress ExecutionStatus = "In Progress"
	ExecutionCompleted  ExecutionStatus = "Completed"
)

type TimerStatus string

const (
	TimerStopped TimerStatus = "Stopped"
	TimerRunning TimerStatus = "Running"
	TimerPaused  TimerStatus = "Paused"
)

type ReviewStatus string

const (
	ReviewNone      ReviewStatus = "None"
	ReviewRequested ReviewStatus = "Requested"
	ReviewPassed    ReviewStatus = "Passed"
	ReviewFailed    ReviewStatus = "Failed"
)

type QualityFlag string

const (
	QualityNone    QualityFlag = "None"
	QualityFlagged QualityFlag = "Flagged"
	QualityCleared QualityFlag = "Cleared"
)

type ChecklistItem struct {
	Label string `json:"label" yaml:"label"`
	Done  bool   `json:"done" yaml:"done"`
}

type TimeLog struct {
	Date  string  `json:"date" yaml:"date"`
	Hours float64 `json:"hours" yaml:"hours"`
	Note  string  `json:"note,omitempty" yaml:"note,omitempty"`
}

// Task status fields are independent dimensions; combinations are not validated.
type Task struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	ProjectID       string          `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	Project         string          `json:"project" yaml:"project"`
	Assignee        string          `json:"assignee" yaml:"assignee"`
	DueDate         string          `json:"dueDate" yaml:"dueDate"`
	Priority        string          `json:"priority" yaml:"priority"`
	Status          string          `json:"status" yaml:"status"`
	ApprovalStatus  ApprovalStatus  `json:"approvalStatus,omitempty" yaml:"approvalStatus,omitempty"`
	ExecutionStatus ExecutionStatus `json:"executionStatus,omitempty" yaml:"executionStatus,omitempty"`
	TimerStatus     TimerStatus     `json:"timerStatus,omitempty" yaml:"timerStatus,omitempty"`
	ReviewStatus    ReviewStatus    `json:"reviewStatus,omitempty" yaml:"reviewStatus,omitempty"`
	QualityFlag     QualityFlag     `json:"qualityFlag,omitempty" yaml:"qualityFlag,omitempty"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
	Checklist       []ChecklistItem `json:"checklist,omitempty" yaml:"checklist,omitempty"`
	TimeLogs        []TimeLog       `json:"timeLogs,omitempty" yaml:"timeLogs,omitempty"`
}

// LoggedHours sums the task's time logs.
func (t Task) LoggedHours() float64 {
	var total float64
	for _, l := range t.TimeLogs {
		total += l.Hours
	}
	return total
}

type Subtask struct {
	ID       string `json:"id" yaml:"id"`
	TaskID   string `json:"taskId" yaml:"taskId"`
	Name     string `json:"name" yaml:"name"`
	Assignee string `json:"assignee" yaml:"assignee"`
	Status   string `json:"status" yaml:"status"`
	DueDate  string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

type TeamLeadSubtask struct {
	ID            string  `json:"id" yaml:"id"`
	TaskID        string  `json:"taskId" yaml:"taskId"`
	Name          string  `json:"name" yaml:"name"`
	Assignee      string  `json:"assignee" yaml:"assignee"`
	Status        string  `json:"status" yaml:"status"`
	EstimateHours float64 `json:"estimateHours" yaml:"estimateHours"`
	LoggedHours   float64 `json:"loggedHours" yaml:"loggedHours"`
}

type OrgKind string

const (
	OrgCompany OrgKind = "company"
	OrgAgency  OrgKind = "agency"
)

// OrgRecord is a company or an agency. Agencies reference the companies they own by id.
type OrgRecord struct {
	ID         string   `json:"id" yaml:"id"`
	Kind       OrgKind  `json:"kind" yaml:"kind"`
	Name       string   `json:"name" yaml:"name"`
	Industry   string   `json:"industry,omitempty" yaml:"industry,omitempty"`
	Contact    string   `json:"contact,omitempty" yaml:"contact,omitempty"`
	Email      string   `json:"email,omitempty" yaml:"email,omitempty"`
	City       string   `json:"city,omitempty" yaml:"city,omitempty"`
	CompanyIDs []string `json:"companyIds,omitempty" yaml:"companyIds,omitempty"`
}

// Event is one journaled mutation.
type Event struct {
	ID       string    `json:"id"`
	TS       time.Time `json:"ts"`
	Actor    string    `json:"actor"`
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	Payload  any       `json:"payload"`
}
