package mutate

import (
	"strings"

	"dws-console/internal/model"
	"dws-console/internal/store"
)

// SetProjectStatus changes one project's status. Unknown ids and unchanged values are no-ops.
func SetProjectStatus(st store.State, projectID string, status model.ProjectStatus) Result {
	projectID = strings.TrimSpace(projectID)
	for i := range st.Projects {
		if st.Projects[i].ID != projectID {
			continue
		}
		prev := st.Projects[i].Status
		if prev == status {
			return Result{State: st}
		}
		next := append([]model.Project(nil), st.Projects...)
		next[i].Status = status
		st.Projects = next
		return Result{
			State:        st,
			Changed:      true,
			EventType:    "project.set_status",
			EntityID:     projectID,
			EventPayload: map[string]any{"from": string(prev), "to": string(status)},
		}
	}
	return Result{State: st}
}

// NextProjectStatus cycles Active -> On Hold -> Completed -> Active.
func NextProjectStatus(s model.ProjectStatus) model.ProjectStatus {
	switch s {
	case model.ProjectActive:
		return model.ProjectOnHold
	case model.ProjectOnHold:
		return model.ProjectCompleted
	default:
		return model.ProjectActive
	}
}
