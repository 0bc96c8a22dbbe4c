package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/core/port/mocks"
	"smartlink/internal/metrics"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

func newPostbackUseCase(t *testing.T) (*PostbackUseCase, *mocks.MockEventPublisher) {
	pub := mocks.NewMockEventPublisher(t)
	u := NewPostbackUseCase(pub, discardLogger(), metrics.New())
	u.now = func() time.Time { return fixedNow }
	return u, pub
}

func TestIngestPublishesEnvelope(t *testing.T) {
	u, pub := newPostbackUseCase(t)

	var published domain.Envelope
	pub.EXPECT().Publish(mock.Anything, mock.AnythingOfType("domain.Envelope")).
		Run(func(_ context.Context, env domain.Envelope) { published = env }).
		Return(nil)

	env, err := u.Ingest(context.Background(), port.PostbackParams{
		ClickID:        "abc123",
		ConversionType: domain.ConversionNewSubscriber,
		LinkID:         "link_1",
		Gross:          "93.75",
		Net:            "75",
		TransactionID:  "T-1",
		Timestamp:      "1773480413",
	})
	require.NoError(t, err)
	assert.Equal(t, env, published)
	assert.Equal(t, int64(9375), env.AmountGrossCents)
	assert.Equal(t, int64(7500), env.AmountNetCents)
	assert.Equal(t, "tx:T-1", env.ExternalEventKey)
	assert.Equal(t, time.Unix(1773480413, 0).UTC(), env.ConversionAt)
	assert.Equal(t, "link_1", env.SmartLinkID)
}

func TestIngestRejectsInvalidParams(t *testing.T) {
	cases := map[string]port.PostbackParams{
		"missing click ref": {ConversionType: "click", LinkID: "link_1"},
		"missing type":      {ClickID: "c", LinkID: "link_1"},
		"unknown type":      {ClickID: "c", ConversionType: "refund", LinkID: "link_1"},
		"missing link":      {ClickID: "c", ConversionType: "click"},
		"negative amount":   {ClickID: "c", ConversionType: "new_transaction", LinkID: "l", Net: "-5"},
		"garbage amount":    {ClickID: "c", ConversionType: "new_transaction", LinkID: "l", Gross: "1,50"},
		"bad timestamp":     {ClickID: "c", ConversionType: "click", LinkID: "l", Timestamp: "yesterday"},
		"year 10000":        {ClickID: "c", ConversionType: "click", LinkID: "l", Timestamp: "253402300800"},
		"offset past 9999":  {ClickID: "c", ConversionType: "click", LinkID: "l", Timestamp: "9999-12-31T23:00:00-05:00"},
		"two days ahead":    {ClickID: "c", ConversionType: "click", LinkID: "l", Timestamp: "2026-03-16T09:26:53Z"},
		"six years old":     {ClickID: "c", ConversionType: "click", LinkID: "l", Timestamp: "2020-01-01T00:00:00Z"},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			u, _ := newPostbackUseCase(t)
			_, err := u.Ingest(context.Background(), p)
			require.ErrorIs(t, err, port.ErrInvalidPostback)
		})
	}
}

func TestIngestAcceptsSmallClockSkew(t *testing.T) {
	u, pub := newPostbackUseCase(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	env, err := u.Ingest(context.Background(), port.PostbackParams{
		ClickID: "c", ConversionType: domain.ConversionClick, LinkID: "l", Timestamp: "2026-03-15T09:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), env.ConversionAt)
}

func TestIngestValidationMessageUsesParamNames(t *testing.T) {
	u, _ := newPostbackUseCase(t)
	_, err := u.Ingest(context.Background(), port.PostbackParams{ClickID: "c", ConversionType: "click"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link_id is required")
}

func TestIngestAcceptsEchoedClickIDOnly(t *testing.T) {
	u, pub := newPostbackUseCase(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	env, err := u.Ingest(context.Background(), port.PostbackParams{
		ExternalClickID: "ours",
		ConversionType:  domain.ConversionClick,
		LinkID:          "link_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ours", env.ClickRef())
	assert.Equal(t, fixedNow, env.ConversionAt)
}

func TestIngestPublishFailure(t *testing.T) {
	u, pub := newPostbackUseCase(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := u.Ingest(context.Background(), port.PostbackParams{
		ClickID: "c", ConversionType: domain.ConversionClick, LinkID: "l",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrInvalidPostback)
}

func TestEventKeyIsStableWithinSecond(t *testing.T) {
	base := domain.Envelope{ClickID: "abc", ConversionType: "new_subscriber", ConversionAt: fixedNow}
	later := base
	later.ConversionAt = fixedNow.Add(300 * time.Millisecond)
	other := base
	other.ConversionType = "new_transaction"

	assert.Equal(t, EventKey(base), EventKey(later))
	assert.NotEqual(t, EventKey(base), EventKey(other))
	assert.Regexp(t, `^ev:[0-9a-f]{64}$`, EventKey(base))

	withTx := base
	withTx.TransactionID = "T-9"
	assert.Equal(t, "tx:T-9", EventKey(withTx))
}

func TestParseCents(t *testing.T) {
	ok := map[string]int64{
		"":       0,
		"0":      0,
		"75":     7500,
		"75.5":   7550,
		"75.50":  7550,
		".99":    99,
		"12.345": 1235,
		"12.344": 1234,
		"0.005":  1,
	}
	for in, want := range ok {
		got, err := ParseCents(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"-1", "1e3", "abc", ".", "1.2.3", "NaN"} {
		_, err := ParseCents(in)
		assert.Error(t, err, in)
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2026-03-14T09:26:53+01:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 8, 26, 53, 0, time.UTC), got)

	got, err = ParseTimestamp("0")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(0, 0).UTC(), got)

	_, err = ParseTimestamp("-10")
	assert.Error(t, err)

	got, err = ParseTimestamp("253402300799")
	require.NoError(t, err)
	assert.Equal(t, 9999, got.Year())

	for _, in := range []string{"253402300800", "9223372036854775807", "9999-12-31T23:00:00-05:00", "1969-12-31T23:59:59Z"} {
		_, err = ParseTimestamp(in)
		assert.Error(t, err, in)
	}
}
