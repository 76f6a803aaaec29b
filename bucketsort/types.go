package bucketsort

import "errors"

// ErrKeyOutOfRange is returned by FixedKeysChecked when a key lies outside
// [0, len(keys)].
var ErrKeyOutOfRange = errors.New("bucketsort: key out of range")
