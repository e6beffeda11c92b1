package mapper

import (
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := domain.FormatLocalDateTime(*task.DueDate)
		item.DueDate = &value
	}

	if task.Category != nil {
		category := ToCategory(*task.Category)
		item.Category = &category
	}

	return item
}

func ToTaskPage(page domain.Page[domain.Task], ignored []domain.IgnoredField) dto.TaskPage {
	result := dto.TaskPage{
		Items:      ToTaskItems(page.Items),
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
	for _, field := range ignored {
		result.Ignored = append(result.Ignored, dto.IgnoredFilter{
			Field:  field.Field,
			Value:  field.Value,
			Reason: field.Reason,
		})
	}
	return result
}

func ToTaskStats(stats domain.Stats) dto.TaskStats {
	return dto.TaskStats{
		Total:      stats.Total,
		Todo:       stats.Todo,
		InProgress: stats.InProgress,
		Done:       stats.Done,
	}
}
