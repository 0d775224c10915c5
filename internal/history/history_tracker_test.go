package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-shift-admin/internal/history"
	historyMock "go-shift-admin/internal/history/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type trackerDeps struct {
	repo    *historyMock.MockRepository
	tracker history.Tracker
}

func setupTrackerTest(t *testing.T) *trackerDeps {
	ctrl := gomock.NewController(t)
	repo := historyMock.NewMockRepository(ctrl)
	return &trackerDeps{
		repo:    repo,
		tracker: history.NewTracker(repo),
	}
}

func strPtr(s string) *string { return &s }

func shiftImage(code string) *history.ShiftImage {
	return &history.ShiftImage{
		ShiftID:    42,
		EmployeeID: 7,
		ShiftDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		ShiftCode:  strPtr(code),
	}
}

func TestTracker_RecordShiftChange_Insert(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	after := shiftImage("A")

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().NextShiftVersion(ctx, int64(42)).Return(1, nil)

	var captured *history.ShiftChange
	deps.repo.EXPECT().
		CreateShiftChange(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *history.ShiftChange) error {
			captured = rec
			return nil
		})

	version, err := deps.tracker.RecordShiftChange(ctx, nil, history.ChangeInsert, nil, after)

	assert.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.Equal(t, history.ChangeInsert, captured.ChangeType)
	assert.Equal(t, 1, captured.Version)
	assert.Equal(t, int64(42), captured.ShiftID)
	assert.Equal(t, int64(7), captured.EmployeeID)
	assert.Nil(t, captured.OldShiftCode)
	assert.Nil(t, captured.OldIsHoliday)
	assert.Equal(t, "A", *captured.NewShiftCode)
	assert.NotNil(t, captured.NewIsHoliday)
}

func TestTracker_RecordShiftChange_UpdateNoOp(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	before := shiftImage("A")
	after := shiftImage("A")

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	// no version allocation, no insert

	version, err := deps.tracker.RecordShiftChange(ctx, nil, history.ChangeUpdate, before, after)

	assert.NoError(t, err)
	assert.Equal(t, 0, version)
}

func TestTracker_RecordShiftChange_Update(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	before := shiftImage("A")
	after := shiftImage("B")
	after.IsRemote = true

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().NextShiftVersion(ctx, int64(42)).Return(2, nil)

	var captured *history.ShiftChange
	deps.repo.EXPECT().
		CreateShiftChange(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *history.ShiftChange) error {
			captured = rec
			return nil
		})

	version, err := deps.tracker.RecordShiftChange(ctx, nil, history.ChangeUpdate, before, after)

	assert.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.Equal(t, history.ChangeUpdate, captured.ChangeType)
	assert.Equal(t, "A", *captured.OldShiftCode)
	assert.Equal(t, "B", *captured.NewShiftCode)
	assert.False(t, *captured.OldIsRemote)
	assert.True(t, *captured.NewIsRemote)
}

func TestTracker_RecordShiftChange_Delete(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	before := shiftImage("C")

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().NextShiftVersion(ctx, int64(42)).Return(3, nil)

	var captured *history.ShiftChange
	deps.repo.EXPECT().
		CreateShiftChange(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *history.ShiftChange) error {
			captured = rec
			return nil
		})

	version, err := deps.tracker.RecordShiftChange(ctx, nil, history.ChangeDelete, before, nil)

	assert.NoError(t, err)
	assert.Equal(t, 3, version)
	assert.Equal(t, history.ChangeDelete, captured.ChangeType)
	assert.Equal(t, "C", *captured.OldShiftCode)
	assert.Nil(t, captured.NewShiftCode)
	assert.Nil(t, captured.NewIsHoliday)
}

func TestTracker_RecordShiftChange_MissingImages(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()

	_, err := deps.tracker.RecordShiftChange(ctx, nil, history.ChangeInsert, nil, nil)
	assert.Error(t, err)

	_, err = deps.tracker.RecordShiftChange(ctx, nil, history.ChangeDelete, nil, nil)
	assert.Error(t, err)

	_, err = deps.tracker.RecordShiftChange(ctx, nil, history.ChangeUpdate, shiftImage("A"), nil)
	assert.Error(t, err)
}

func TestTracker_RecordShiftChange_SequencerError(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		NextShiftVersion(ctx, int64(42)).
		Return(0, errors.New("serialization failure"))
	// CreateShiftChange must never run; the error aborts the caller's tx

	_, err := deps.tracker.RecordShiftChange(ctx, nil, history.ChangeDelete, shiftImage("A"), nil)
	assert.Error(t, err)
}

func employeeImage(name string, groupID *int64) *history.EmployeeImage {
	return &history.EmployeeImage{
		EmployeeID: 7,
		Name:       name,
		GroupID:    groupID,
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestTracker_RecordEmployeeChange_Insert(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	after := employeeImage("山田 太郎", int64Ptr(3))

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

	var name *history.NameRecord
	deps.repo.EXPECT().
		CreateNameRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *history.NameRecord) error {
			name = rec
			return nil
		})
	deps.repo.EXPECT().NextEmployeeVersion(ctx, int64(7)).Return(1, nil)

	var change *history.EmployeeChange
	deps.repo.EXPECT().
		CreateEmployeeChange(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *history.EmployeeChange) error {
			change = rec
			return nil
		})

	version, err := deps.tracker.RecordEmployeeChange(ctx, nil, history.ChangeInsert, nil, after)

	assert.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.True(t, name.IsCurrent)
	assert.Nil(t, name.ValidTo)
	assert.Equal(t, "山田 太郎", name.Name)
	assert.Equal(t, history.ChangeInsert, change.ChangeType)
	assert.Nil(t, change.OldGroupID)
	assert.Equal(t, int64(3), *change.NewGroupID)
}

func TestTracker_RecordEmployeeChange_NameOnly(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	before := employeeImage("山田 太郎", int64Ptr(3))
	after := employeeImage("山田 花子", int64Ptr(3))

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().CloseCurrentNameRecord(ctx, int64(7), gomock.Any()).Return(nil)

	var name *history.NameRecord
	deps.repo.EXPECT().
		CreateNameRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *history.NameRecord) error {
			name = rec
			return nil
		})
	// no delta-log record for a name-only change

	version, err := deps.tracker.RecordEmployeeChange(ctx, nil, history.ChangeUpdate, before, after)

	assert.NoError(t, err)
	assert.Equal(t, 0, version)
	assert.True(t, name.IsCurrent)
	assert.Equal(t, "山田 花子", name.Name)
}

func TestTracker_RecordEmployeeChange_AssignmentOnly(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	before := employeeImage("山田 太郎", int64Ptr(3))
	after := employeeImage("山田 太郎", int64Ptr(5))

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().NextEmployeeVersion(ctx, int64(7)).Return(4, nil)

	var change *history.EmployeeChange
	deps.repo.EXPECT().
		CreateEmployeeChange(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *history.EmployeeChange) error {
			change = rec
			return nil
		})
	// no SCD writes for an assignment-only change

	version, err := deps.tracker.RecordEmployeeChange(ctx, nil, history.ChangeUpdate, before, after)

	assert.NoError(t, err)
	assert.Equal(t, 4, version)
	assert.Equal(t, history.ChangeUpdate, change.ChangeType)
	assert.Equal(t, int64(3), *change.OldGroupID)
	assert.Equal(t, int64(5), *change.NewGroupID)
}

func TestTracker_RecordEmployeeChange_NoOp(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	before := employeeImage("山田 太郎", int64Ptr(3))
	after := employeeImage("山田 太郎", int64Ptr(3))

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

	version, err := deps.tracker.RecordEmployeeChange(ctx, nil, history.ChangeUpdate, before, after)

	assert.NoError(t, err)
	assert.Equal(t, 0, version)
}

func TestTracker_RecordEmployeeChange_Delete(t *testing.T) {
	deps := setupTrackerTest(t)
	ctx := context.Background()

	before := employeeImage("山田 太郎", int64Ptr(3))

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().CloseCurrentNameRecord(ctx, int64(7), gomock.Any()).Return(nil)
	deps.repo.EXPECT().NextEmployeeVersion(ctx, int64(7)).Return(2, nil)

	var change *history.EmployeeChange
	deps.repo.EXPECT().
		CreateEmployeeChange(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *history.EmployeeChange) error {
			change = rec
			return nil
		})

	version, err := deps.tracker.RecordEmployeeChange(ctx, nil, history.ChangeDelete, before, nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.Equal(t, history.ChangeDelete, change.ChangeType)
	assert.Equal(t, int64(3), *change.OldGroupID)
	assert.Nil(t, change.NewGroupID)
}
