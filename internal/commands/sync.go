package commands

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/service"
	"todo/internal/todo"
)

// pushResult counts the remote changes made by a push.
type pushResult struct {
	Created   int
	Completed int
}

// pushItems mirrors items onto a remote list.
// Items with no remote task of the same title are created; done items whose
// remote task is still open get completed. Nothing is ever deleted remotely.
func pushItems(ctx context.Context, svc service.Service, listID string, items []todo.Item) (pushResult, error) {
	var res pushResult
	logger := log.FromContext(ctx)

	remote, err := svc.ListTasks(ctx, listID)
	if err != nil {
		return res, err
	}

	for _, it := range items {
		i := findTask(remote, it)
		if i < 0 {
			task := service.Task{Title: it.Title, Status: service.StatusNeedsAction}
			if it.Due != nil {
				task.Notes = *it.Due
			}
			if it.Done {
				task.Status = service.StatusCompleted
			}
			if err := svc.CreateTask(ctx, listID, task); err != nil {
				return res, err
			}
			logger.Debug("created remote task", "title", it.Title)
			// Later items with the same title match this one instead of duplicating it
			remote = append(remote, task)
			res.Created++
			continue
		}

		task := remote[i]
		if it.Done && !task.Completed() && task.ID != "" {
			if err := svc.CompleteTask(ctx, listID, task.ID); err != nil {
				return res, err
			}
			logger.Debug("completed remote task", "title", it.Title)
			remote[i].Status = service.StatusCompleted
			res.Completed++
		}
	}
	return res, nil
}

// pullTasks appends every open remote task whose title is not yet in list.
// Returns the number of items added.
func pullTasks(ctx context.Context, svc service.Service, listID string, list *todo.List) (int, error) {
	remote, err := svc.ListTasks(ctx, listID)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, task := range remote {
		if task.Completed() || strings.TrimSpace(task.Title) == "" {
			continue
		}
		if list.Contains(task.Title) {
			continue
		}
		list.Add(task.Title, nil)
		added++
	}
	return added, nil
}

// findTask returns the index of the remote task titled like it, or -1.
func findTask(remote []service.Task, it todo.Item) int {
	for i, task := range remote {
		if it.HasTitle(task.Title) {
			return i
		}
	}
	return -1
}
