// Command genlog writes a newline-delimited json file of synthetic log
// entries, handy for trying the browser against a large dataset.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

var (
	levels   = []string{"debug", "info", "info", "info", "warn", "error"}
	messages = []string{
		"request served",
		"cache miss",
		"retrying upstream",
		"connection reset by peer",
		"slow query",
		"worker drained",
	}
)

func main() {
	count := 10000
	if len(os.Args) > 1 {
		parsed, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Usage: %s [count] > out.ndjson\n", os.Args[0])
			os.Exit(1)
		}
		count = parsed
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	encoder := json.NewEncoder(out)
	start := time.Now().Add(-time.Duration(count) * time.Second)

	for i := 0; i < count; i++ {
		entry := map[string]any{
			"ts":         start.Add(time.Duration(i) * time.Second).Format(time.RFC3339Nano),
			"level":      levels[rand.Intn(len(levels))],
			"msg":        messages[rand.Intn(len(messages))],
			"request_id": fmt.Sprintf("req-%06d", rand.Intn(count)),
			"elapsed_ms": rand.Intn(900) + 3,
		}

		if err := encoder.Encode(entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
