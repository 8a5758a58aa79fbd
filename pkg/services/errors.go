// Package services provides the persistence service layer over the Ent
// client: tasks, viewpoints, progress logs, and timeline assembly.
package services

import "errors"

var (
	// ErrTaskNotFound indicates the task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrViewpointNotFound indicates the viewpoint does not exist.
	ErrViewpointNotFound = errors.New("viewpoint not found")

	// ErrNoTimeline indicates the task has no materialized timeline yet.
	ErrNoTimeline = errors.New("task has no timeline")
)
