package usecase

import (
	"context"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/dto"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
)

// GetClientProfile is the use case for the dashboard's client detail view.
type GetClientProfile struct {
	resolver *service.FeatureResolver
	profiles *service.ProfileBuilder
}

// NewGetClientProfile creates a new GetClientProfile use case.
func NewGetClientProfile(resolver *service.FeatureResolver, profiles *service.ProfileBuilder) *GetClientProfile {
	return &GetClientProfile{resolver: resolver, profiles: profiles}
}

// Execute assembles the client profile from the stored feature row.
func (uc *GetClientProfile) Execute(ctx context.Context, clientID int64) (dto.ClientProfileResponse, error) {
	row, err := uc.resolver.Row(ctx, clientID)
	if err != nil {
		return dto.ClientProfileResponse{}, err
	}
	return dto.FromProfile(uc.profiles.Build(clientID, row)), nil
}
