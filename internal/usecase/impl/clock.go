package impl

import "time"

// timeNow is swapped out in tests to pin the clock.
var timeNow = time.Now
