package mutate

import (
	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/store"
)

// AddTask prepends t and navigates to the task list.
func AddTask(st store.State, t model.Task) Result {
	st.Tasks = prepend(st.Tasks, t)
	return Result{
		State:        st,
		Changed:      true,
		EventType:    "task.add",
		EntityID:     t.ID,
		EventPayload: map[string]any{"name": t.Name, "project": t.Project, "assignee": t.Assignee},
	}.navigateTo(nav.ScreenTaskList)
}

// AddSubtask prepends s; the current screen stays.
func AddSubtask(st store.State, s model.Subtask) Result {
	st.Subtasks = prepend(st.Subtasks, s)
	return Result{
		State:        st,
		Changed:      true,
		EventType:    "subtask.add",
		EntityID:     s.ID,
		EventPayload: map[string]any{"taskId": s.TaskID, "name": s.Name},
	}
}
