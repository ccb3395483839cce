package heap

import "unsafe"

// BytesToString and StringToBytes give a zero-copy path between
// []byte and string; the config loader uses BytesToString for secret
// file contents.
func BytesToString(bs []byte) string {
	return *(*string)(unsafe.Pointer(&bs))
}

func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Assert panics if err is non-nil, logging it first through Log if
// one has been installed. Used by host-side code (cmd/heapd startup)
// where a panic is an acceptable failure mode; the allocator package
// itself never calls this on caller-supplied sizes.
func Assert(err error) {
	if err != nil {
		if Log != nil {
			Log.Err().Caller(1).Msg(err.Error())
		}
		panic(err)
	}
}

// Must is Assert for a (value, error) pair.
func Must[T any](ret T, err error) T {
	if err != nil {
		if Log != nil {
			Log.Err().Caller(1).Msg(err.Error())
		}
		panic(err)
	}
	return ret
}

// Log is the process-wide logger used by Assert/Must and by
// cmd/heapd before its own request-scoped logger is wired up. nil
// until something installs one; Assert/Must tolerate that.
var Log Logger
