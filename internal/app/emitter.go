package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/five82/spyglass/internal/console"
)

const defaultEmitInterval = 750 * time.Millisecond

// demoLines is the sample traffic for demo mode. Lines carry level tokens
// so the pane's colorizing is visible out of the box.
var demoLines = []string{
	"INFO  request handled path=/api/items status=200",
	"INFO  cache refresh complete entries=482",
	"DEBUG worker heartbeat id=3",
	"WARN  retrying upstream call attempt=2",
	"ERROR upstream timeout host=db-1",
	"INFO  checkpoint written offset=91231",
}

// startEmitter launches a goroutine that prints sample output on stdout,
// stderr, the stdlib logger, and the manual append path at a fixed
// cadence. It returns immediately.
func startEmitter(ctx context.Context, interval time.Duration, appender *console.Appender) {
	if interval <= 0 {
		interval = defaultEmitInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		seq := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			line := demoLines[rand.Intn(len(demoLines))]
			seq++
			switch seq % 4 {
			case 0:
				fmt.Fprintf(os.Stderr, "%s seq=%d\n", line, seq)
			case 1:
				fmt.Printf("%s seq=%d\n", line, seq)
			case 2:
				log.Printf("%s seq=%d", line, seq)
			default:
				appender.Append(fmt.Sprintf("%s seq=%d\n", line, seq))
			}
		}
	}()
}
