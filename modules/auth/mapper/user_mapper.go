package mapper

import (
	"meetease/modules/auth/dto"
	"meetease/modules/auth/entity"
)

func ToProfileResponse(user *entity.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
