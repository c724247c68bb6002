package shelf

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	mockRepo.EXPECT().GetForUser(gomock.Any(), "u-1", "s-1").Return(Shelf{ID: "s-1", UserID: "u-1"}, nil)
	mockRepo.EXPECT().GetForUser(gomock.Any(), "u-2", "s-1").Return(Shelf{}, ErrNotFound)

	sh, err := svc.GetOwned(context.Background(), "u-1", "s-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", sh.ID)

	_, err = svc.GetOwned(context.Background(), "u-2", "s-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
