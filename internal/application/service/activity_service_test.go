package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/domain/entity"
	"github.com/hoanggia/woodshop-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestActivityLog_SwallowsWriteFailure(t *testing.T) {
	activityRepo := new(MockActivityLogRepository)
	svc := NewActivityService(activityRepo)

	activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(assert.AnError)

	// Must not panic or propagate the failure
	svc.Log(context.Background(), testActor(), enum.ActivityActionCreate, "product", nil, "created product")

	activityRepo.AssertExpectations(t)
}

func TestActivityExport_CapsAtNewest(t *testing.T) {
	activityRepo := new(MockActivityLogRepository)
	svc := NewActivityService(activityRepo)

	detail := "created product Oak Chair"
	logs := []entity.ActivityLog{
		{
			UserID:     uuid.New(),
			UserEmail:  "owner@woodshop.vn",
			Action:     enum.ActivityActionCreate,
			EntityType: "product",
			Details:    &detail,
			CreatedAt:  time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		},
	}
	activityRepo.On("ListNewest", mock.Anything, 500).Return(logs, nil)

	data, err := svc.Export(context.Background())

	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	user, err := f.GetCellValue("Activity Log", "B2")
	require.NoError(t, err)
	assert.Equal(t, "owner@woodshop.vn", user)

	action, err := f.GetCellValue("Activity Log", "C2")
	require.NoError(t, err)
	assert.Equal(t, "create", action)

	activityRepo.AssertExpectations(t)
}
