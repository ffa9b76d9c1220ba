package internal

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

const inspectTemplate = `<!DOCTYPE html>
<html><head><title>candidate-notes inspector</title>
<style>body{font-family:monospace}td{padding:2px 8px;border-bottom:1px solid #ddd}</style></head>
<body>
<form><input name="prefix" value="{{.Prefix}}"><button>Inspect</button></form>
<p>{{range $k, $v := .Stats}}<b>{{$k}}</b>: {{$v}} &nbsp; {{end}}</p>
<table>
<tr><th>Type</th><th>Key</th><th>Time</th><th>Detail</th></tr>
{{range .Items}}<tr><td>{{.Type}}</td><td>{{.Key}}</td><td>{{.Timestamp}}</td><td>{{.Detail}}</td></tr>
{{end}}</table>
</body></html>`

// Fields never rendered by the inspector.
var redacted = map[string]struct{}{"password_hash": {}}

type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	Detail    string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// NewDebugServer serves a read-only view of the Badger keyspace on endpoint.
// Only meant to be started at debug log level.
func NewDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) *http.Server {
	tmpl := template.Must(template.New("inspect").Parse(inspectTemplate))
	if mapper == nil {
		mapper = DefaultMapper
	}

	mux := http.NewServeMux()
	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "note:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	return &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// RunDebugServer serves until ctx is cancelled.
func RunDebugServer(ctx context.Context, log *slog.Logger, server *http.Server) {
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
	log.Debug("Badger inspector listening", "url", "http://"+server.Addr+"/inspect")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Warn("Badger inspector stopped", "error", err)
	}
}

// DefaultMapper renders CBOR records field by field and index entries as the id they point to.
// Index keys carry a padded timestamp after a NUL separator.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       strings.ReplaceAll(key, "\x00", "|"),
		Type:      "RAW",
		Timestamp: "--:--:--",
		Detail:    string(val),
	}
	if kind, _, ok := strings.Cut(key, ":"); ok {
		row.Type = strings.ToUpper(kind)
	}

	if _, rest, ok := strings.Cut(key, "\x00"); ok && len(rest) >= 19 {
		if tsNano, err := strconv.ParseInt(rest[:19], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).Format("15:04:05")
		}
		return row
	}

	var record map[string]any
	if err := cbor.Unmarshal(val, &record); err != nil {
		if !utf8.Valid(val) {
			row.Detail = "Size: " + strconv.Itoa(len(val)) + " bytes"
		}
		return row
	}
	if createdAt, ok := record["created_at"].(uint64); ok {
		row.Timestamp = time.Unix(0, int64(createdAt)).Format("15:04:05")
	}
	row.Detail = describe(record)
	return row
}

func describe(record map[string]any) string {
	fields := make([]string, 0, len(record))
	for k := range record {
		if _, skip := redacted[k]; !skip {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)

	var b bytes.Buffer
	for i, k := range fields {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%v", k, record[k])
	}
	return b.String()
}
