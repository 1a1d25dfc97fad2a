package syncstore

import (
	"errors"
	"fmt"
)

var (
	// ErrSuperseded 表示這次同步在完成前已被更新的請求取代，結果被丟棄。
	ErrSuperseded = errors.New("refresh superseded by a newer request")
	// ErrClosed 表示 Store 已關閉，不再接受同步。
	ErrClosed = errors.New("sync store is closed")
)

// FetchError 描述單一資料來源的取得失敗：傳輸錯誤、非 2xx 狀態碼，
// 或回應封包不符預期格式。
type FetchError struct {
	Feed   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Feed, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Feed, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// CycleError 表示整個同步週期失敗。任何一個來源失敗都會中止整個週期，
// 先前安裝的 Snapshot 原封不動保留。
type CycleError struct {
	Feed string // 第一個失敗的來源
	Err  error
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("refresh cycle failed on feed %s: %v", e.Feed, e.Err)
}

func (e *CycleError) Unwrap() error { return e.Err }

func newCycleError(err error) *CycleError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return &CycleError{Feed: fe.Feed, Err: err}
	}
	return &CycleError{Feed: "unknown", Err: err}
}
