package sheet

import (
	"context"
	"fmt"
	"strings"

	apperrors "paperdrill/internal/platform/errors"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsConfig identifies a spreadsheet and the service account used to
// reach it. PrivateKey may carry literal "\n" sequences as env vars often do.
type SheetsConfig struct {
	SpreadsheetID string
	Email         string
	PrivateKey    string
	// Tabs maps table name to the zero-based index of its sheet tab.
	Tabs map[string]int
}

// valuesAPI is the slice of the Sheets API the tables need.
type valuesAPI interface {
	sheetTitle(ctx context.Context, index int) (string, error)
	get(ctx context.Context, rng string) ([][]any, error)
	update(ctx context.Context, rng string, values [][]any) error
	append(ctx context.Context, rng string, values [][]any) error
}

type SheetsBook struct {
	api  valuesAPI
	tabs map[string]int
}

func OpenSheets(ctx context.Context, cfg SheetsConfig) (*SheetsBook, error) {
	if cfg.SpreadsheetID == "" || cfg.Email == "" || cfg.PrivateKey == "" {
		return nil, fmt.Errorf("%w: sheets backend needs spreadsheet id, email and private key", apperrors.ErrInvalidInput)
	}
	conf := &jwt.Config{
		Email:      cfg.Email,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(context.Background())))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return newSheetsBook(&googleValues{svc: svc, spreadsheetID: cfg.SpreadsheetID}, cfg.Tabs), nil
}

func newSheetsBook(api valuesAPI, tabs map[string]int) *SheetsBook {
	copied := make(map[string]int, len(tabs))
	for k, v := range tabs {
		copied[k] = v
	}
	return &SheetsBook{api: api, tabs: copied}
}

func (b *SheetsBook) Table(ctx context.Context, name string, columns []string) (Table, error) {
	if err := validateSchema(name, columns); err != nil {
		return nil, err
	}
	idx, ok := b.tabs[name]
	if !ok {
		return nil, fmt.Errorf("%w: no sheet tab mapped for table %s", apperrors.ErrInvalidInput, name)
	}
	title, err := b.api.sheetTitle(ctx, idx)
	if err != nil {
		return nil, fmt.Errorf("resolve %s sheet: %w", name, err)
	}
	return &sheetsTable{api: b.api, title: title, columns: append([]string(nil), columns...)}, nil
}

func (b *SheetsBook) Close() error { return nil }

type sheetsTable struct {
	api     valuesAPI
	title   string
	columns []string
}

func (t *sheetsTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *sheetsTable) quoted() string {
	return "'" + strings.ReplaceAll(t.title, "'", "''") + "'"
}

// load returns the header row and data rows. An empty tab gets the
// configured columns written as its header.
func (t *sheetsTable) load(ctx context.Context) ([]string, [][]string, error) {
	raw, err := t.api.get(ctx, t.quoted())
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", t.title, err)
	}
	if len(raw) == 0 {
		header := make([]any, len(t.columns))
		for i, col := range t.columns {
			header[i] = col
		}
		if err := t.api.update(ctx, t.quoted()+"!A1", [][]any{header}); err != nil {
			return nil, nil, fmt.Errorf("write sheet %s header: %w", t.title, err)
		}
		return t.Columns(), nil, nil
	}
	header := cellsOf(raw[0])
	data := make([][]string, 0, len(raw)-1)
	for _, r := range raw[1:] {
		data = append(data, cellsOf(r))
	}
	return header, data, nil
}

func (t *sheetsTable) List(ctx context.Context) ([]Row, error) {
	header, data, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(data))
	for _, cells := range data {
		out = append(out, toRow(header, t.columns, cells))
	}
	return out, nil
}

func (t *sheetsTable) Update(ctx context.Context, keyColumn, key string, values Row) error {
	if err := checkColumns(t.columns, Row{keyColumn: key}); err != nil {
		return err
	}
	if err := checkColumns(t.columns, values); err != nil {
		return err
	}
	header, data, err := t.load(ctx)
	if err != nil {
		return err
	}
	idx := find(header, data, keyColumn, key)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	return t.writeRow(ctx, header, data[idx], idx, values)
}

func (t *sheetsTable) Upsert(ctx context.Context, keyColumn string, row Row) error {
	if err := checkColumns(t.columns, row); err != nil {
		return err
	}
	key, ok := row[keyColumn]
	if !ok {
		return fmt.Errorf("%w: row has no %s", apperrors.ErrInvalidInput, keyColumn)
	}
	header, data, err := t.load(ctx)
	if err != nil {
		return err
	}
	idx := find(header, data, keyColumn, key)
	if idx < 0 {
		return t.appendRow(ctx, header, row)
	}
	return t.writeRow(ctx, header, data[idx], idx, row)
}

func (t *sheetsTable) Append(ctx context.Context, row Row) error {
	if err := checkColumns(t.columns, row); err != nil {
		return err
	}
	header, _, err := t.load(ctx)
	if err != nil {
		return err
	}
	return t.appendRow(ctx, header, row)
}

// fitsHeader rejects values for columns the tab's live header lacks.
func (t *sheetsTable) fitsHeader(header []string, values Row) error {
	if err := checkColumns(header, values); err != nil {
		return fmt.Errorf("sheet %s header: %w", t.title, err)
	}
	return nil
}

func (t *sheetsTable) writeRow(ctx context.Context, header, existing []string, idx int, values Row) error {
	if err := t.fitsHeader(header, values); err != nil {
		return err
	}
	cells := make([]any, len(header))
	for i, col := range header {
		if v, ok := values[col]; ok {
			cells[i] = v
			continue
		}
		if i < len(existing) {
			cells[i] = existing[i]
		} else {
			cells[i] = ""
		}
	}
	// Row 1 is the header, so data index 0 lives on row 2.
	rng := fmt.Sprintf("%s!A%d", t.quoted(), idx+2)
	if err := t.api.update(ctx, rng, [][]any{cells}); err != nil {
		return fmt.Errorf("update sheet %s row: %w", t.title, err)
	}
	return nil
}

func (t *sheetsTable) appendRow(ctx context.Context, header []string, row Row) error {
	if err := t.fitsHeader(header, row); err != nil {
		return err
	}
	cells := make([]any, len(header))
	for i, col := range header {
		cells[i] = row[col]
	}
	if err := t.api.append(ctx, t.quoted(), [][]any{cells}); err != nil {
		return fmt.Errorf("append sheet %s row: %w", t.title, err)
	}
	return nil
}

func find(header []string, data [][]string, keyColumn, key string) int {
	col := -1
	for i, h := range header {
		if h == keyColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return -1
	}
	for i, cells := range data {
		if col < len(cells) && cells[col] == key {
			return i
		}
	}
	return -1
}

func toRow(header, columns []string, cells []string) Row {
	row := make(Row, len(columns))
	for _, col := range columns {
		row[col] = ""
	}
	for i, h := range header {
		if _, ok := row[h]; !ok {
			continue
		}
		if i < len(cells) {
			row[h] = cells[i]
		}
	}
	return row
}

func cellsOf(raw []any) []string {
	out := make([]string, len(raw))
	for i, v := range raw {
		if s, ok := v.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

type googleValues struct {
	svc           *sheets.Service
	spreadsheetID string
}

func (g *googleValues) sheetTitle(ctx context.Context, index int) (string, error) {
	doc, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(doc.Sheets) || doc.Sheets[index].Properties == nil {
		return "", fmt.Errorf("%w: spreadsheet has no tab %d", apperrors.ErrNotFound, index)
	}
	return doc.Sheets[index].Properties.Title, nil
}

func (g *googleValues) get(ctx context.Context, rng string) ([][]any, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (g *googleValues) update(ctx context.Context, rng string, values [][]any) error {
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").Context(ctx).Do()
	return err
}

func (g *googleValues) append(ctx context.Context, rng string, values [][]any) error {
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return err
}
