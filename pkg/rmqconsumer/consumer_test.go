package rmqconsumer

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinic-office-api/config"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()
	return buf.String()
}

func Test_delivery_Table(t *testing.T) {
	type tc struct {
		name       string
		routingKey string
		body       string
		wantOut    string
	}
	cases := []tc{
		{"created", "created", `{"entity_type":"patient","entity_id":"1"}`, "Action=created EventBody={\"entity_type\":\"patient\",\"entity_id\":\"1\"}\n"},
		{"updated", "updated", `{"entity_type":"user","entity_id":"2"}`, "Action=updated EventBody={\"entity_type\":\"user\",\"entity_id\":\"2\"}\n"},
		{"deleted", "deleted", `{"entity_type":"specialty","entity_id":"3"}`, "Action=deleted EventBody={\"entity_type\":\"specialty\",\"entity_id\":\"3\"}\n"},
		{"restored", "restored", `{"entity_type":"patient","entity_id":"4"}`, "Action=restored EventBody={\"entity_type\":\"patient\",\"entity_id\":\"4\"}\n"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := &Consumer{}
			out := captureStdout(t, func() {
				msg := amqp091.Delivery{RoutingKey: tt.routingKey, Body: []byte(tt.body)}
				err := c.delivery(msg)
				require.NoError(t, err)
			})
			require.Equal(t, tt.wantOut, out)
		})
	}
}

func TestConnect_InvalidDSN(t *testing.T) {
	l := zap.NewNop()
	c := New(config.MQ{}, l, nil)

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}
