package events

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNDJSONSink_OneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewNDJSONSink(&buf)

	sink.Emit(Event{Type: TypePipelineStart, DocID: 42})
	sink.Emit(Event{Type: TypeStepStart, DocID: 42, Step: "title"})

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 2)

	var first Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, TypePipelineStart, first.Type)
	assert.Equal(t, 42, first.DocID)
	assert.False(t, first.Timestamp.IsZero())
}

func TestRecordingSink_PreservesOrder(t *testing.T) {
	sink := NewRecordingSink()
	sink.Emit(Event{Type: TypePipelineStart, DocID: 1})
	sink.Emit(Event{Type: TypeStepStart, DocID: 1, Step: "ocr"})
	sink.Emit(Event{Type: TypeStepComplete, DocID: 1, Step: "ocr"})
	sink.Emit(Event{Type: TypePipelineComplete, DocID: 1})

	events := sink.Events()
	require.Len(t, events, 4)
	assert.Equal(t, TypePipelineStart, events[0].Type)
	assert.Equal(t, TypePipelineComplete, events[3].Type)
}

func TestMultiSink_FansOutToAll(t *testing.T) {
	a := NewRecordingSink()
	b := NewRecordingSink()
	multi := MultiSink{a, b}

	multi.Emit(Event{Type: TypePipelineStart, DocID: 7})

	assert.Len(t, a.Events(), 1)
	assert.Len(t, b.Events(), 1)
}
