package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartlink/internal/core/domain"
)

func TestFormatCents(t *testing.T) {
	cases := map[int64]string{0: "0.00", 5: "0.05", 7500: "75.00", 123456: "1234.56", -250: "-2.50"}
	for in, want := range cases {
		assert.Equal(t, want, FormatCents(in), in)
	}
}

func TestExpandPostbackURL(t *testing.T) {
	env := domain.Envelope{ClickID: "a b&c", FanUsername: "fan_7"}
	conv := domain.Conversion{ID: "conv_1", AmountNetCents: 1999, EventType: domain.EventRebill}

	got := ExpandPostbackURL("https://t.example/pb?cid={click_id}&v={amount}&f={fan_id}&id={conversion_id}&e={event_type}&keep={other}", env, conv)
	assert.Equal(t, "https://t.example/pb?cid=a+b%26c&v=19.99&f=fan_7&id=conv_1&e=rebill&keep={other}", got)

	env = domain.Envelope{ExternalClickID: "ours", FanOfID: "123"}
	assert.Equal(t, "https://t.example/ours/123", ExpandPostbackURL("https://t.example/{click_id}/{fan_id}", env, conv))
}

func TestAdPlatformEventName(t *testing.T) {
	assert.Equal(t, "Subscribe", AdPlatformEventName(domain.EventSubscribe))
	assert.Equal(t, "Purchase", AdPlatformEventName(domain.EventPurchase))
	assert.Equal(t, "Purchase", AdPlatformEventName(domain.EventRebill))
	assert.Equal(t, "ViewContent", AdPlatformEventName(domain.EventClick))
}
