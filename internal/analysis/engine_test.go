package analysis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jengzang/vessel-intervals-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "time,00-lathr [deg],01-lonhr [deg],04-speed [knots],06-navstatus [adim]"

const scenario = header + "\n" +
	"2024-01-01 10:00:00.0,36.1287,-5.4400,0.1,0.0\n" +
	"2024-01-01 10:05:00.0,36.1287,-5.4400,0.1,0.0\n" +
	"2024-01-01 10:10:00.0,36.00,-5.40,12.5,2.0\n"

func scenarioEngine() *Engine {
	opts := DefaultOptions()
	opts.Segment.GapThreshold = time.Hour
	return NewEngine(nil, opts)
}

func TestProcessScenario(t *testing.T) {
	res, err := scenarioEngine().Process(context.Background(), []models.FileContent{{Name: "log.csv", Content: scenario}})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, res.Data)

	intervals := res.Data.Intervals
	require.Len(t, intervals, 2)

	docked := intervals[0]
	assert.Equal(t, "0.0", docked.NavStatus.Code)
	assert.Equal(t, "00:05:00", docked.Duration)
	assert.Equal(t, 2, docked.SampleCount)
	assert.Equal(t, models.EndStatusChange, docked.EndReason)
	require.NotNil(t, docked.StartPort)
	assert.Equal(t, "Algeciras", docked.StartPort.Name)
	require.NotNil(t, docked.Classification)
	assert.Equal(t, models.ActivityDocked, docked.Classification.Type)
	require.NotNil(t, docked.JourneyIndex)
	assert.Equal(t, 1, *docked.JourneyIndex)

	transit := intervals[1]
	assert.Equal(t, models.EndOfData, transit.EndReason)
	assert.Equal(t, 1, transit.SampleCount)
	assert.Nil(t, transit.StartPort, "beyond the tagging radius")
	require.NotNil(t, transit.Classification)
	assert.Equal(t, models.ActivityUndefined, transit.Classification.Type)
	assert.Equal(t, models.ReasonConditionsNot, transit.Classification.Reason)

	assert.Len(t, res.Data.Journeys, 1)
	assert.Empty(t, res.Data.Routes)

	require.Len(t, res.Data.Activities, 2)
	assert.Equal(t, "docked_algeciras", res.Data.Activities[0].ID)
	assert.Equal(t, int64(300), res.Data.Activities[0].Duration)
	assert.Equal(t, "undefined", res.Data.Activities[1].ID)

	s := res.Data.Summary
	assert.Equal(t, 2, s.TotalIntervals)
	assert.Equal(t, 3, s.TotalRows)
	assert.Equal(t, 3, s.ValidRows)
	assert.Equal(t, 1, s.FilesProcessed)
	assert.Equal(t, map[string]int{"0.0": 1, "2.0": 1}, s.StatusCounts)
	assert.Equal(t, 3, s.TotalCoordinatePoints)

	assert.Equal(t, []models.FileStat{{File: "log.csv", Rows: 3}}, res.Meta.ProcessedFiles)
	assert.Empty(t, res.Meta.Errors)
}

func TestIntervalJSONKeepsNullPorts(t *testing.T) {
	res, err := scenarioEngine().Process(context.Background(), []models.FileContent{{Name: "log.csv", Content: scenario}})
	require.NoError(t, err)
	require.Len(t, res.Data.Intervals, 2)

	out, err := json.Marshal(res.Data.Intervals[1])
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	for _, key := range []string{"startPort", "endPort", "startLat", "journeyIndex"} {
		v, ok := fields[key]
		require.True(t, ok, key)
		if key == "startPort" || key == "endPort" {
			assert.Nil(t, v, key)
		}
	}
}

func TestProcessDefaultGapSplitsScenario(t *testing.T) {
	res, err := NewEngine(nil, DefaultOptions()).Process(context.Background(), []models.FileContent{{Name: "log.csv", Content: scenario}})
	require.NoError(t, err)
	require.True(t, res.Success)

	require.Len(t, res.Data.Intervals, 3)
	assert.Equal(t, models.EndTimeGap, res.Data.Intervals[0].EndReason)
	assert.Equal(t, models.EndTimeGap, res.Data.Intervals[1].EndReason)
	assert.Equal(t, models.EndOfData, res.Data.Intervals[2].EndReason)
}

func TestProcessSkipsInvalidFile(t *testing.T) {
	res, err := scenarioEngine().Process(context.Background(), []models.FileContent{
		{Name: "foo.csv", Content: "foo,bar\n1,2\n"},
		{Name: "log.csv", Content: scenario},
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, []string{"file has no valid data: foo.csv"}, res.Meta.Errors)
	assert.Equal(t, 1, res.Data.Summary.FilesProcessed)
}

func TestProcessNoValidRows(t *testing.T) {
	res, err := scenarioEngine().Process(context.Background(), []models.FileContent{
		{Name: "foo.csv", Content: "foo,bar\n1,2\n"},
		{Name: "empty.csv", Content: "   "},
		{Name: "nonav.csv", Content: header + "\n2024-01-01 10:00:00.0,36.1,-5.4,1,\n"},
	})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Nil(t, res.Data)
	assert.Equal(t, ErrNoValidRows, res.Error)
	require.NotNil(t, res.Meta)
	assert.Equal(t, []string{"file has no valid data: foo.csv", "empty file: empty.csv"}, res.Meta.Errors)
	assert.Equal(t, []models.FileStat{{File: "nonav.csv", Rows: 1}}, res.Meta.ProcessedFiles)
}

func TestProcessDeterministicAndConserving(t *testing.T) {
	files := []models.FileContent{
		{Name: "b.csv", Content: header + "\n" +
			"2024-01-01 10:00:03.0,35.88,-5.51,0,0.0\n" +
			"2024-01-01 10:00:03.5,35.88,-5.51,0,0.0\n" +
			"2024-01-01 10:00:04.0,35.88,-5.51,3,1.0\n" +
			"bad-time,35.88,-5.51,3,1.0\n"},
		{Name: "a.csv", Content: header + "\n" +
			"2024-01-01 10:00:00.0,35.889,-5.307,0,0.0\n" +
			"2024-01-01 10:00:00.5,35.889,-5.307,0,0.0\n" +
			"2024-01-01 10:00:01.0,35.95,-5.40,14,2.0\n" +
			"2024-01-01 10:00:01.5,35.90,-5.50,14,2.0\n"},
	}

	engine := NewEngine(nil, DefaultOptions())
	first, err := engine.Process(context.Background(), files)
	require.NoError(t, err)
	second, err := engine.Process(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.True(t, first.Success)
	total := 0
	for _, iv := range first.Data.Intervals {
		total += iv.SampleCount
		for _, p := range iv.Coordinates {
			assert.Equal(t, iv.NavStatus, p.NavStatus)
		}
	}
	assert.Equal(t, first.Data.Summary.ValidRows, total)
	assert.Equal(t, 7, total)
	assert.Equal(t, 8, first.Data.Summary.TotalRows)
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := scenarioEngine().Process(ctx, []models.FileContent{{Name: "log.csv", Content: scenario}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestRawRows(t *testing.T) {
	res, err := scenarioEngine().RawRows(context.Background(), []models.FileContent{{Name: "log.csv", Content: scenario}})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, res.Data, 3)

	for _, row := range res.Data {
		require.NotNil(t, row.ClosestPort)
		assert.Equal(t, "Algeciras", row.ClosestPort.Name)
	}
	assert.Equal(t, 14.76, res.Data[2].ClosestPort.Distance)
}

func TestRawRowsNoValidRows(t *testing.T) {
	res, err := scenarioEngine().RawRows(context.Background(), []models.FileContent{{Name: "foo.csv", Content: "foo,bar\n"}})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, ErrNoValidRows, res.Error)
}

func TestEngineClassify(t *testing.T) {
	c := scenarioEngine().Classify(models.NewNavStatus("0.0"),
		&models.PortAnalysis{Name: "Ceuta", Distance: 3.9},
		&models.PortAnalysis{Name: "Ceuta", Distance: 3.9})
	assert.Equal(t, models.ActivityDocked, c.Type)
	assert.Equal(t, "Docked at Ceuta", c.Label)
}
