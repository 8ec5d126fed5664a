package translator

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// fakeDriverName is a database/sql driver serving canned result sets. The
// first word of the DSN names the dataset, so parallel tests do not share
// state.
const fakeDriverName = "fastdrc-fake"

func init() {
	sql.Register(fakeDriverName, fakeDriver{})
}

var (
	fakeMu       sync.Mutex
	fakeDatasets = map[string]*fakeDataset{}
	fakeSeq      atomic.Int64
)

type fakeDataset struct {
	columns  []string
	rows     [][]driver.Value
	queryErr error
	// rowsByQuery serves the rows of the key a query contains instead of rows.
	rowsByQuery map[string][][]driver.Value
	// failAt makes Next fail before returning the row at this index.
	failAt int

	mu      sync.Mutex
	queries []string
	opened  int
	closed  int
}

func newFakeDataset(columns []string, rows ...[]driver.Value) (string, *fakeDataset) {
	name := fmt.Sprintf("fake-%d", fakeSeq.Add(1))
	ds := &fakeDataset{columns: columns, rows: rows, failAt: -1}
	fakeMu.Lock()
	fakeDatasets[name] = ds
	fakeMu.Unlock()
	return name, ds
}

func (d *fakeDataset) Queries() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.queries...)
}

func (d *fakeDataset) OpenConnections() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened - d.closed
}

type fakeDriver struct{}

func (fakeDriver) Open(dsn string) (driver.Conn, error) {
	name, _, _ := strings.Cut(dsn, " ")
	fakeMu.Lock()
	ds, ok := fakeDatasets[name]
	fakeMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	ds.mu.Lock()
	ds.opened++
	ds.mu.Unlock()
	return &fakeConn{ds: ds}, nil
}

type fakeConn struct {
	ds *fakeDataset
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *fakeConn) Close() error {
	c.ds.mu.Lock()
	c.ds.closed++
	c.ds.mu.Unlock()
	return nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.ds.mu.Lock()
	c.ds.queries = append(c.ds.queries, query)
	c.ds.mu.Unlock()
	if c.ds.queryErr != nil {
		return nil, c.ds.queryErr
	}
	rows := c.ds.rows
	for key, keyed := range c.ds.rowsByQuery {
		if strings.Contains(query, key) {
			rows = keyed
			break
		}
	}
	return &fakeRows{ds: c.ds, rows: rows}, nil
}

type fakeRows struct {
	ds   *fakeDataset
	rows [][]driver.Value
	pos  int
}

func (r *fakeRows) Columns() []string {
	return r.ds.columns
}

func (r *fakeRows) Close() error {
	return nil
}

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos == r.ds.failAt {
		return errors.New("connection reset by peer")
	}
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}
