package syncstore

import (
	"context"
	"sync"
	"time"
)

// 同步失敗時對使用者顯示的單一錯誤訊息，細節只進 log。
const userFacingError = "Failed to fetch data. Please try again."

// Event 為一次同步週期完成後的通知內容：安裝成功帶 Snapshot，
// 失敗帶 Err，兩者互斥。
type Event struct {
	Snapshot *Snapshot
	Err      error
}

// Status 彙整目前的同步狀態。
type Status struct {
	Loading   bool      `json:"loading"`
	Error     string    `json:"error,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Store 獨占持有目前的 Snapshot 與 loading/error 旗標，
// 只有 Refresh 會寫入這些狀態，其餘元件一律唯讀。
//
// 重疊策略採 latest-wins：新的同步請求會取消仍在進行中的那一次，
// 被取代的週期其結果在安裝點被丟棄。
type Store struct {
	source FeedSource

	mu             sync.Mutex
	snapshot       *Snapshot
	loading        bool
	errMsg         string
	generation     uint64
	cancelInflight context.CancelFunc
	closed         bool
	subs           map[int]func(Event)
	nextSubID      int
	now            func() time.Time
}

// NewStore 建立 Store。第一次成功同步前 loading 為 true、Snapshot 為空。
func NewStore(source FeedSource) *Store {
	return &Store{
		source:  source,
		loading: true,
		subs:    make(map[int]func(Event)),
		now:     time.Now,
	}
}

// Snapshot 回傳最近一次成功安裝的 Snapshot。Snapshot 一經安裝即不可變，
// 呼叫端可以放心共用。
func (s *Store) Snapshot() (*Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, false
	}
	return s.snapshot, true
}

// Status 回傳目前的同步狀態旗標。
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{Loading: s.loading, Error: s.errMsg}
	if s.snapshot != nil {
		st.FetchedAt = s.snapshot.FetchedAt
	}
	return st
}

// Subscribe 註冊訂閱者，回傳取消訂閱的函式。每個完成的同步週期
// （安裝或失敗）同步通知所有訂閱者恰好一次。
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Refresh 執行一次同步週期：並行取得六個資料來源，全部成功才安裝
// 新 Snapshot；任何一個失敗則整個週期失敗，先前的 Snapshot 原封不動，
// 只記錄使用者可見的錯誤狀態。回傳 *CycleError、ErrSuperseded 或 ErrClosed。
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	// latest-wins：取消仍在進行中的週期，其結果會在安裝點被丟棄。
	if s.cancelInflight != nil {
		s.cancelInflight()
	}
	s.generation++
	gen := s.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancelInflight = cancel
	s.mu.Unlock()

	snap, err := s.fetchAll(fetchCtx)
	cancel()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if gen != s.generation {
		s.mu.Unlock()
		return ErrSuperseded
	}
	s.cancelInflight = nil
	s.loading = false

	var event Event
	if err != nil {
		s.errMsg = userFacingError
		event = Event{Err: err}
	} else {
		snap.FetchedAt = s.now()
		s.snapshot = snap
		s.errMsg = ""
		event = Event{Snapshot: snap}
	}
	subs := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(event)
	}
	return err
}

// Close 關閉 Store：取消進行中的週期，之後任何遲到的結果都不會被安裝。
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.cancelInflight != nil {
		s.cancelInflight()
		s.cancelInflight = nil
	}
	s.subs = make(map[int]func(Event))
}

// fetchAll 並行取得六個資料來源，等全部結束後才回傳。
// 在所有來源完成前不做任何可見的狀態變更。
func (s *Store) fetchAll(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	var wg sync.WaitGroup
	errCh := make(chan error, 6)

	run := func(fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				errCh <- err
			}
		}()
	}

	run(func() error {
		v, err := s.source.FetchDashboard(ctx)
		if err != nil {
			return err
		}
		snap.Dashboard = v
		return nil
	})
	run(func() error {
		v, err := s.source.FetchStocks(ctx)
		if err != nil {
			return err
		}
		snap.Stocks = v
		return nil
	})
	run(func() error {
		v, err := s.source.FetchCrypto(ctx)
		if err != nil {
			return err
		}
		snap.Crypto = v
		return nil
	})
	run(func() error {
		v, err := s.source.FetchPortfolio(ctx)
		if err != nil {
			return err
		}
		snap.Portfolio = v
		return nil
	})
	run(func() error {
		v, err := s.source.FetchNews(ctx)
		if err != nil {
			return err
		}
		snap.News = v
		return nil
	})
	run(func() error {
		v, err := s.source.FetchAlerts(ctx)
		if err != nil {
			return err
		}
		snap.Alerts = v
		return nil
	})

	wg.Wait()
	close(errCh)
	if err, ok := <-errCh; ok {
		return nil, newCycleError(err)
	}
	return &snap, nil
}
