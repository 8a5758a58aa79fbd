package services

import (
	"context"
	"fmt"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/viewpoint"
)

// ViewpointService manages synthetic viewpoints.
type ViewpointService struct {
	client *ent.Client
}

// NewViewpointService creates a viewpoint service.
func NewViewpointService(client *ent.Client) *ViewpointService {
	return &ViewpointService{client: client}
}

// FindReusable returns an existing completed synthetic viewpoint for the
// same (topic, data_source_preference), or nil when none exists.
func (s *ViewpointService) FindReusable(ctx context.Context, topic, dataSourcePreference string) (*ent.Viewpoint, error) {
	vp, err := s.client.Viewpoint.Query().
		Where(
			viewpoint.TopicEQ(topic),
			viewpoint.DataSourcePreferenceEQ(dataSourcePreference),
			viewpoint.ViewpointTypeEQ(viewpoint.ViewpointTypeSynthetic),
			viewpoint.StatusEQ(viewpoint.StatusCompleted),
		).
		Order(ent.Desc(viewpoint.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying reusable viewpoint: %w", err)
	}
	return vp, nil
}

// CreateSynthetic creates a new synthetic viewpoint in processing state.
func (s *ViewpointService) CreateSynthetic(ctx context.Context, topic, dataSourcePreference string) (*ent.Viewpoint, error) {
	vp, err := s.client.Viewpoint.Create().
		SetTopic(topic).
		SetViewpointType(viewpoint.ViewpointTypeSynthetic).
		SetDataSourcePreference(dataSourcePreference).
		SetStatus(viewpoint.StatusProcessing).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating synthetic viewpoint: %w", err)
	}
	return vp, nil
}

// SetStatus moves a viewpoint to the given status.
func (s *ViewpointService) SetStatus(ctx context.Context, viewpointID int, status viewpoint.Status) error {
	err := s.client.Viewpoint.UpdateOneID(viewpointID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrViewpointNotFound
		}
		return fmt.Errorf("updating viewpoint status: %w", err)
	}
	return nil
}

// Get fetches a viewpoint by ID.
func (s *ViewpointService) Get(ctx context.Context, viewpointID int) (*ent.Viewpoint, error) {
	vp, err := s.client.Viewpoint.Get(ctx, viewpointID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrViewpointNotFound
		}
		return nil, fmt.Errorf("querying viewpoint: %w", err)
	}
	return vp, nil
}
