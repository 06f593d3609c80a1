package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
)

func TestSetAndGet(t *testing.T) {
	c := New()
	report := entities.StrategicReport{SumarioExecutivo: "empresa saudável"}

	c.Set("chave", report, time.Minute)

	got, ok := c.Get("chave")
	require.True(t, ok)
	assert.Equal(t, report, got)

	_, ok = c.Get("outra-chave")
	assert.False(t, ok)
}

func TestGetExpired(t *testing.T) {
	c := New()
	c.Set("chave", entities.StrategicReport{SumarioExecutivo: "x"}, -time.Second)

	_, ok := c.Get("chave")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	c := New()
	c.Set("chave", entities.StrategicReport{SumarioExecutivo: "x"}, time.Minute)

	c.Clear()

	_, ok := c.Get("chave")
	assert.False(t, ok)
}

func TestKeyTracksResponseContent(t *testing.T) {
	responses := entities.ResponseMap{
		"1.1": {SelectedOption: "B", Score: 33},
	}

	key1 := Key("diag-1", responses)
	key2 := Key("diag-1", responses.Clone())
	assert.Equal(t, key1, key2, "respostas idênticas devem gerar a mesma chave")

	changed := responses.Clone()
	changed["1.1"] = entities.Response{SelectedOption: "D", Score: 100}
	assert.NotEqual(t, key1, Key("diag-1", changed), "mudar uma resposta deve mudar a chave")

	withNote := responses.Clone()
	resp := withNote["1.1"]
	resp.Observation = "anotação"
	withNote["1.1"] = resp
	assert.NotEqual(t, key1, Key("diag-1", withNote), "mudar uma anotação deve mudar a chave")

	assert.NotEqual(t, key1, Key("diag-2", responses), "sessões diferentes não compartilham chave")
}
