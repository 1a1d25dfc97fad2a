package syncstore

import (
	"context"
	"errors"
	"log"
	"time"
)

// DefaultInterval 為未設定時的同步週期。
const DefaultInterval = 30 * time.Second

// Poller 以固定週期觸發 Store.Refresh 的背景工作者。
type Poller struct {
	store    *Store
	interval time.Duration
	stopChan chan struct{}
}

// NewPoller 建立背景輪詢器。
func NewPoller(store *Store, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		store:    store,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start 啟動迴圈。啟動後立即執行一次，之後依週期觸發；
// Stop 之後計時器不再觸發。
func (p *Poller) Start() {
	log.Printf("[Poller] starting sync poller with interval: %v", p.interval)
	ticker := time.NewTicker(p.interval)
	go func() {
		p.runOnce()

		for {
			select {
			case <-ticker.C:
				p.runOnce()
			case <-p.stopChan:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop 停止迴圈。
func (p *Poller) Stop() {
	close(p.stopChan)
}

func (p *Poller) runOnce() {
	err := p.store.Refresh(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, ErrSuperseded):
		log.Printf("[Poller] scheduled refresh superseded by a manual request")
	case errors.Is(err, ErrClosed):
	default:
		log.Printf("[Poller] refresh failed: %v", err)
	}
}
