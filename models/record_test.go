package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteRecord_FlattenedJSON(t *testing.T) {
	updatedAt := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	record := RemoteRecord[SavingsGoal]{
		ServerID:  "g1",
		OwnerID:   1,
		Payload:   trip(),
		UpdatedAt: updatedAt,
	}

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "g1", fields["serverId"])
	assert.Equal(t, float64(1), fields["ownerId"])
	assert.Equal(t, "Trip", fields["name"])
	assert.Equal(t, "2026-10-01T12:00:00Z", fields["updatedAt"])
	assert.NotContains(t, fields, "Payload")

	var decoded RemoteRecord[SavingsGoal]
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "g1", decoded.ServerID)
	assert.True(t, decoded.Payload.Equal(record.Payload))
	assert.True(t, decoded.UpdatedAt.Equal(updatedAt))
}

func TestRemoteRecord_RejectsNonObjectPayload(t *testing.T) {
	_, err := json.Marshal(RemoteRecord[int]{ServerID: "g1", Payload: 5})
	assert.Error(t, err)
}

func TestCreateRequest_JSON(t *testing.T) {
	raw, err := json.Marshal(CreateRequest[SavingsGoal]{OwnerID: 7, Payload: trip()})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"ownerId":7`)
	assert.NotContains(t, string(raw), "serverId")

	var decoded CreateRequest[SavingsGoal]
	require.NoError(t, json.Unmarshal([]byte(`{"ownerId":3,"name":"Car","targetAmount":"5000"}`), &decoded))
	assert.Equal(t, int64(3), decoded.OwnerID)
	assert.Equal(t, "Car", decoded.Payload.Name)
	assert.True(t, decimal.NewFromInt(5000).Equal(decoded.Payload.TargetAmount))
}

func TestToRemoteFromRemote(t *testing.T) {
	local := LocalRecord[SavingsGoal]{LocalID: 4, OwnerID: 1, Payload: trip(), Dirty: true, Revision: 3}
	assert.Equal(t, "", ToRemote(local).ServerID)

	sid := "g9"
	local.ServerID = &sid
	remote := ToRemote(local)
	assert.Equal(t, "g9", remote.ServerID)

	back := FromRemote(remote)
	assert.False(t, back.Dirty)
	assert.Zero(t, back.LocalID)
	assert.Zero(t, back.Revision)
	assert.Equal(t, "g9", back.ServerIDOrEmpty())

	assert.Nil(t, FromRemote(RemoteRecord[SavingsGoal]{}).ServerID)
}

func TestSyncReport_OK(t *testing.T) {
	assert.True(t, SyncReport{}.OK())
	assert.False(t, SyncReport{Unauthorized: true}.OK())
	assert.False(t, SyncReport{Collections: []CollectionReport{{PullErr: assert.AnError}}}.OK())

	var pull PullReport
	pull.Count(ApplyInserted)
	pull.Count(ApplyRejected)
	pull.Count(ApplyUnchanged)
	assert.Equal(t, PullReport{Inserted: 1, Rejected: 1, Unchanged: 1}, pull)
	assert.Equal(t, "updated", ApplyUpdated.String())
}

func TestSession_Valid(t *testing.T) {
	assert.True(t, Session{OwnerID: 1, Token: "t"}.Valid())
	assert.False(t, Session{OwnerID: 0, Token: "t"}.Valid())
	assert.False(t, Session{OwnerID: 1}.Valid())
}
