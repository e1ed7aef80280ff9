package service

import (
	"testing"
	"time"

	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newActivityService(db *gorm.DB) ActivityService {
	return NewActivityService(
		repository.NewActivityRepository(db),
		repository.NewUserTestRepository(db),
	)
}

func TestCreateActivityTimeIssueRoundTrip(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db, "a@x.com")
	test := seedTest(t, db, admin.ID, "T1", true)
	user := seedUser(t, db, 1, "U1")
	session := seedSession(t, db, user.ID, test.ID)
	svc := newActivityService(db)

	instant := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	resp, err := svc.CreateActivity(ctx(), dto.ActivityCreateDTO{
		UserTestID: session.ID,
		TimeIssue:  instant.Format(time.RFC3339),
		Type:       "tab-switch",
		Metadata:   `{"window":"discord"}`,
	})
	require.NoError(t, err)
	assert.True(t, resp.TimeIssue.Equal(instant))

	listed, err := svc.ListActivities(ctx(), repository.Page{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].TimeIssue.Equal(instant))
	assert.Equal(t, `{"window":"discord"}`, listed[0].Metadata)
}

func TestCreateActivityAcceptsAgentLayouts(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db, "a@x.com")
	test := seedTest(t, db, admin.ID, "T1", true)
	user := seedUser(t, db, 1, "U1")
	session := seedSession(t, db, user.ID, test.ID)
	svc := newActivityService(db)

	for _, raw := range []string{
		"2025-03-14T09:26:53Z",
		"2025-03-14T09:26:53",
		"2025-03-14 09:26:53",
		"2025-03-14",
	} {
		_, err := svc.CreateActivity(ctx(), dto.ActivityCreateDTO{
			UserTestID: session.ID,
			TimeIssue:  raw,
			Type:       "noise",
		})
		require.NoError(t, err, "layout %q", raw)
	}
}

func TestCreateActivityRejectsUnparsableTime(t *testing.T) {
	db := newTestDB(t)
	svc := newActivityService(db)

	_, err := svc.CreateActivity(ctx(), dto.ActivityCreateDTO{
		UserTestID: 1,
		TimeIssue:  "yesterday around noon",
		Type:       "noise",
	})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestCreateActivityRequiresExistingSession(t *testing.T) {
	db := newTestDB(t)
	svc := newActivityService(db)

	_, err := svc.CreateActivity(ctx(), dto.ActivityCreateDTO{
		UserTestID: 999,
		TimeIssue:  "2025-03-14T09:26:53Z",
		Type:       "noise",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListActivitiesAttachesParentSession(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db, "a@x.com")
	test := seedTest(t, db, admin.ID, "T1", true)
	user := seedUser(t, db, 1, "U1")
	session := seedSession(t, db, user.ID, test.ID)
	svc := newActivityService(db)

	_, err := svc.CreateActivity(ctx(), dto.ActivityCreateDTO{
		UserTestID: session.ID,
		TimeIssue:  "2025-03-14T09:26:53Z",
		Type:       "tab-switch",
	})
	require.NoError(t, err)

	listed, err := svc.ListActivities(ctx(), repository.Page{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].UserTest)
	assert.Equal(t, session.ID, listed[0].UserTest.ID)
	assert.Equal(t, test.ID, listed[0].UserTest.TestID)
}
