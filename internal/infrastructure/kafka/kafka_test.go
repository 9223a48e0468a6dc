package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"phiCalc/internal/domain"
	"phiCalc/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeWriter запоминает отправленные сообщения.
type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

// fakeReader отдаёт сообщения по очереди, затем ждёт отмены ctx.
type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

func testOperation() domain.Operation {
	return domain.Operation{
		Kind:      domain.KindPhi,
		Params:    `{"base":1,"power":1,"unit":"rem"}`,
		Result:    `"1.618rem"`,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestEventRoundTrip(t *testing.T) {
	op := testOperation()
	payload, err := json.Marshal(op)
	require.NoError(t, err)

	raw, err := encodeEvent("phi key", payload, time.Now())
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, EventType, envelope["type"])
	assert.Equal(t, EventSource, envelope["source"])
	assert.Equal(t, "phi key", envelope["subject"])
	assert.Equal(t, "1.0", envelope["specversion"])
	assert.NotEmpty(t, envelope["id"])

	got, err := decodeEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, op.Kind, got.Kind)
	assert.Equal(t, op.Result, got.Result)
	assert.True(t, op.Timestamp.Equal(got.Timestamp))
}

func TestDecodeEvent_Errors(t *testing.T) {
	_, err := decodeEvent([]byte("not json"))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`{"specversion":"1.0","id":"1","source":"x","type":"other.type"}`))
	assert.ErrorContains(t, err, "unexpected event type")
}

func TestProducer_Send(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{w: w}

	payload, err := json.Marshal(testOperation())
	require.NoError(t, err)
	require.NoError(t, p.Send(context.Background(), []byte("key"), payload))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("key"), w.msgs[0].Key)
	assert.Equal(t, ContentType, string(w.msgs[0].Headers[0].Value))

	op, err := decodeEvent(w.msgs[0].Value)
	require.NoError(t, err)
	assert.Equal(t, domain.KindPhi, op.Kind)

	w.err = errors.New("broker down")
	assert.Error(t, p.Send(context.Background(), []byte("key"), payload))
}

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIScaleUseCase(ctrl)

	payload, err := json.Marshal(testOperation())
	require.NoError(t, err)
	good, err := encodeEvent("key", payload, time.Now())
	require.NoError(t, err)

	r := &fakeReader{msgs: []kafka.Message{
		{Offset: 1, Value: []byte("garbage")},
		{Offset: 2, Value: good},
		{Offset: 3, Value: good},
	}}
	c := &Consumer{r: r, uc: uc, log: newTestLogger(), backoff: time.Millisecond}

	// Третье сообщение дважды падает и проходит с третьей попытки.
	gomock.InOrder(
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Return(nil),
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Return(errors.New("click down")).Times(2),
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Return(nil),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err = c.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Мусор коммитится (пропуск), сообщение после сбоя обработки не теряется.
	assert.Equal(t, []int64{1, 2, 3}, committedOffsets(r))
}

func committedOffsets(r *fakeReader) []int64 {
	offsets := make([]int64, 0, len(r.committed))
	for _, m := range r.committed {
		offsets = append(offsets, m.Offset)
	}
	return offsets
}

// Сбой обработки не даёт закоммитить ни это сообщение, ни следующие.
func TestConsumer_FailingHandlerBlocksCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIScaleUseCase(ctrl)

	payload, err := json.Marshal(testOperation())
	require.NoError(t, err)
	good, err := encodeEvent("key", payload, time.Now())
	require.NoError(t, err)

	r := &fakeReader{msgs: []kafka.Message{
		{Offset: 1, Value: good},
		{Offset: 2, Value: good},
	}}
	c := &Consumer{r: r, uc: uc, log: newTestLogger(), backoff: time.Millisecond}

	uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Return(errors.New("click down")).MinTimes(1)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = c.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, committedOffsets(r))
	assert.Len(t, r.msgs, 1, "второе сообщение не читается, пока первое не обработано")
}

func TestConfig_BrokersSlice(t *testing.T) {
	assert.Equal(t, []string{"localhost:9092"}, (*Config)(nil).brokersSlice())
	assert.Equal(t, []string{"a:9092", "b:9092"}, (&Config{Brokers: " a:9092, ,b:9092 "}).brokersSlice())
}
