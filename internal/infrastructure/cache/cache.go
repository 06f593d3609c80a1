// Package cache guarda o último payload estratégico gerado por sessão,
// chaveado pelo hash do conteúdo das respostas. Regerar o relatório de uma
// sessão inalterada não dispara nova chamada ao colaborador de insight.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/efraim-gestao/efraim-360-api/internal/domain/entities"
)

type item struct {
	report     entities.StrategicReport
	expiration int64
}

// InsightCache é um cache em memória com expiração por item.
type InsightCache struct {
	items map[string]item
	mu    sync.RWMutex
}

// New cria o cache e inicia a limpeza periódica de itens expirados.
func New() *InsightCache {
	cache := &InsightCache{
		items: make(map[string]item),
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			cache.deleteExpired()
		}
	}()

	return cache
}

// Key deriva a chave de cache de uma sessão: id do diagnóstico + SHA-256 do
// JSON canônico das respostas. Qualquer mudança em qualquer resposta muda a
// chave e invalida o insight anterior.
func Key(diagnosticID string, responses entities.ResponseMap) string {
	payload, err := json.Marshal(responses)
	if err != nil {
		return diagnosticID
	}
	sum := sha256.Sum256(payload)
	return diagnosticID + ":" + hex.EncodeToString(sum[:])
}

// Set guarda o payload com a duração informada.
func (c *InsightCache) Set(key string, report entities.StrategicReport, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item{
		report:     report,
		expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get retorna o payload e um booleano indicando se a chave existe e é válida.
func (c *InsightCache) Get(key string) (entities.StrategicReport, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, found := c.items[key]
	if !found {
		return entities.StrategicReport{}, false
	}

	if time.Now().UnixNano() > it.expiration {
		return entities.StrategicReport{}, false
	}

	return it.report, true
}

func (c *InsightCache) deleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.expiration {
			delete(c.items, k)
		}
	}
}

// Clear remove todos os itens do cache.
func (c *InsightCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]item)
}
