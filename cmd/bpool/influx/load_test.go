package influx

import (
	"github.com/openziti/bpool/util"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestPoints(t *testing.T) {
	now := time.Now()
	runId := &util.RunId{Id: "run0", Values: map[string]string{"limit": "4"}}
	ps := points("spares", runId, []*util.Sample{{Ts: now, V: 3}, {Ts: now, V: 4}})
	assert.Len(t, ps, 2)
	assert.Equal(t, "spares", ps[0].Name())
	assert.Equal(t, now, ps[0].Time())

	tags := make(map[string]string)
	for _, tag := range ps[0].TagList() {
		tags[tag.Key] = tag.Value
	}
	assert.Equal(t, map[string]string{"run": "run0", "limit": "4"}, tags)
	assert.Equal(t, int64(4), ps[1].FieldList()[0].Value)
}
