package folio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ErrBusy is returned when an operation class is already in flight.
// Overlapping calls are rejected, not queued: the engine is single-owner
// and re-entry only happens through careless UI wiring.
var ErrBusy = errors.New("operation already in progress")

// ViewModel owns the in-memory holdings list and the presentation state,
// computes every derived view, mediates every mutation through the API
// client, and keeps the persisted state in sync.
//
// The local list is the single source of truth for rendering. It is
// reconciled after every mutation (replace-in-place or prepend), never
// silently re-fetched.
type ViewModel struct {
	client *Client
	store  Store

	locale   string
	email    string
	holdings []Holding

	filter   Filter
	targets  map[Category]float64
	rates    RateTable
	display  string
	budget   float64
	history  ValueHistory
	events   EventLog
	presets  []Preset

	busy map[string]bool

	// now is the clock, replaceable in tests.
	now func() time.Time
}

// NewViewModel builds a view-model over the given collaborators, loading
// every persisted concern with its defensive loader.
func NewViewModel(client *Client, store Store) *ViewModel {
	locale := LoadLocale(store)
	vm := &ViewModel{
		client:  client,
		store:   store,
		locale:  locale,
		filter:  LoadFilter(store),
		targets: LoadTargets(store),
		rates:   LoadRates(store),
		display: LoadDisplayCurrency(store, locale),
		budget:  LoadBudget(store),
		history: LoadHistory(store),
		events:  LoadEvents(store),
		presets: LoadPresets(store),
		busy:    make(map[string]bool),
		now:     time.Now,
	}
	if token, ok := store.GetItem(KeyToken); ok {
		vm.client.SetToken(strings.TrimSpace(token))
	}
	if email, ok := store.GetItem(KeyEmail); ok {
		vm.email = strings.TrimSpace(email)
	}
	return vm
}

func (vm *ViewModel) enter(op string) error {
	if vm.busy[op] {
		return ErrBusy
	}
	vm.busy[op] = true
	return nil
}

func (vm *ViewModel) leave(op string) { vm.busy[op] = false }

// T localizes a message key in the current locale.
func (vm *ViewModel) T(key string, params map[string]string) string {
	return Localize(vm.locale, key, params)
}

// notice picks the user-facing message for an API error: the server detail
// verbatim when present, a localized fallback otherwise.
func (vm *ViewModel) notice(err error, fallbackKey string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Detail != "" {
		return re.Detail
	}
	return vm.T(fallbackKey, nil)
}

// Locale returns the active locale tag.
func (vm *ViewModel) Locale() string { return vm.locale }

// SetLocale switches and persists the locale.
func (vm *ViewModel) SetLocale(locale string) {
	if strings.TrimSpace(locale) == "" {
		return
	}
	vm.locale = locale
	_ = vm.store.SetItem(KeyLocale, locale)
}

// Email returns the authenticated user's email, "" when logged out.
func (vm *ViewModel) Email() string { return vm.email }

// IsAuthed reports whether a bearer token is installed.
func (vm *ViewModel) IsAuthed() bool { return vm.client.Token() != "" }

// Holdings returns the authoritative local list, most recent first.
func (vm *ViewModel) Holdings() []Holding { return vm.holdings }

// --- authentication ---

// Login authenticates, persists the session, and loads the portfolio.
// It returns the user-facing notice message.
func (vm *ViewModel) Login(ctx context.Context, email, password string) (string, error) {
	if err := vm.enter("login"); err != nil {
		return "", err
	}
	defer vm.leave("login")

	session, err := vm.client.Login(ctx, email, password)
	if err != nil {
		return vm.notice(err, "loginFailed"), err
	}
	vm.email = session.Email
	_ = vm.store.SetItem(KeyToken, session.Token)
	_ = vm.store.SetItem(KeyEmail, session.Email)
	if err := vm.Load(ctx); err != nil {
		return vm.notice(err, "requestFailed"), err
	}
	return vm.T("loginSuccess", nil), nil
}

// Register creates an account; the user still has to log in.
func (vm *ViewModel) Register(ctx context.Context, email, password string) (string, error) {
	if err := vm.enter("register"); err != nil {
		return "", err
	}
	defer vm.leave("register")

	if err := vm.client.Register(ctx, email, password); err != nil {
		return vm.notice(err, "registerFailed"), err
	}
	return vm.T("registerSuccess", nil), nil
}

// Logout invalidates the session server-side when possible and always
// clears the local session and holdings.
func (vm *ViewModel) Logout(ctx context.Context) (string, error) {
	var err error
	if vm.IsAuthed() {
		err = vm.client.Logout(ctx)
	}
	vm.logoutLocal()
	if err != nil {
		return vm.notice(err, "requestFailed"), err
	}
	return vm.T("logoutSuccess", nil), nil
}

// logoutLocal clears the token, email and in-memory holdings without any
// network call.
func (vm *ViewModel) logoutLocal() {
	vm.client.SetToken("")
	vm.email = ""
	vm.holdings = nil
	_ = vm.store.SetItem(KeyToken, "")
	_ = vm.store.SetItem(KeyEmail, "")
}

// Init restores a persisted session: it probes the profile endpoint and,
// on any failure (typically an expired token), falls back to a clean
// logged-out state instead of surfacing an error.
func (vm *ViewModel) Init(ctx context.Context) error {
	if !vm.IsAuthed() {
		return nil
	}
	email, err := vm.client.Profile(ctx)
	if err != nil {
		vm.logoutLocal()
		return nil
	}
	vm.email = email
	_ = vm.store.SetItem(KeyEmail, email)
	if err := vm.Load(ctx); err != nil {
		vm.logoutLocal()
	}
	return nil
}

// --- holdings mutations ---

// Load fetches the full holdings collection, replacing the local list
// entirely, and records a value snapshot. An unauthorized response drops
// silently into the logged-out state.
func (vm *ViewModel) Load(ctx context.Context) error {
	if !vm.IsAuthed() {
		return nil
	}
	holdings, err := vm.client.List(ctx)
	if err != nil {
		if IsUnauthorized(err) {
			vm.logoutLocal()
			return nil
		}
		return err
	}
	vm.holdings = holdings
	vm.snapshot()
	return nil
}

// Save validates the input and creates (editingID == "") or updates a
// holding. On success the local list is reconciled in place, an event is
// appended, and the value history re-snapshot. The returned string is the
// user-facing notice message.
func (vm *ViewModel) Save(ctx context.Context, in Input, editingID string) (string, error) {
	if verr := in.Validate(); verr != nil {
		return vm.T("invalidAsset", nil), verr
	}
	if err := vm.enter("save"); err != nil {
		return "", err
	}
	defer vm.leave("save")

	payload := in.normalized(vm.locale)
	var saved Holding
	var err error
	editing := editingID != ""
	if editing {
		saved, err = vm.client.Update(ctx, editingID, payload)
	} else {
		saved, err = vm.client.Create(ctx, payload)
	}
	if err != nil {
		return vm.notice(err, "saveFailed"), err
	}

	vm.reconcile(saved)
	title := EventAdded
	msg := "assetSaved"
	if editing {
		title, msg = EventUpdated, "assetUpdated"
	}
	vm.appendEvent(title, saved.Name)
	vm.snapshot()
	return vm.T(msg, nil), nil
}

// Remove deletes a holding. One delete runs at a time.
func (vm *ViewModel) Remove(ctx context.Context, id string) (string, error) {
	if err := vm.enter("delete"); err != nil {
		return "", err
	}
	defer vm.leave("delete")

	if err := vm.client.Delete(ctx, id); err != nil {
		return vm.notice(err, "deleteFailed"), err
	}
	name := id
	kept := vm.holdings[:0]
	for _, h := range vm.holdings {
		if h.ID == id {
			name = h.Name
			continue
		}
		kept = append(kept, h)
	}
	vm.holdings = kept
	vm.appendEvent(EventDeleted, name)
	vm.snapshot()
	return vm.T("assetDeleted", nil), nil
}

// reconcile splices a saved record over its previous version, or prepends
// a new one, keeping the list most-recent-first.
func (vm *ViewModel) reconcile(saved Holding) {
	for i, h := range vm.holdings {
		if h.ID == saved.ID {
			vm.holdings[i] = saved
			return
		}
	}
	vm.holdings = append([]Holding{saved}, vm.holdings...)
}

// ImportCSV reads CSV rows and creates one holding per row, strictly
// sequentially, through the same validation path as Save. It stops on the
// first failure but does not roll back rows already created; the count of
// created rows is returned either way.
func (vm *ViewModel) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	if err := vm.enter("save"); err != nil {
		return 0, err
	}
	defer vm.leave("save")

	inputs, err := ParseCSV(r)
	if err != nil {
		return 0, err
	}
	imported := 0
	for i, in := range inputs {
		if verr := in.Validate(); verr != nil {
			return imported, fmt.Errorf("row %d: %w", i+2, verr)
		}
		saved, err := vm.client.Create(ctx, in.normalized(vm.locale))
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", i+2, err)
		}
		vm.reconcile(saved)
		imported++
	}
	if imported > 0 {
		vm.appendEvent(EventImported, fmt.Sprintf("%d", imported))
		vm.snapshot()
	}
	return imported, nil
}

// ExportCSV writes the current full holdings list in the canonical column
// order.
func (vm *ViewModel) ExportCSV(w io.Writer) error {
	return ExportCSV(w, vm.holdings)
}

// --- presentation state ---

// Filter returns the active filter.
func (vm *ViewModel) Filter() Filter { return vm.filter }

// SetFilter normalizes, applies and persists the filter.
func (vm *ViewModel) SetFilter(f Filter) {
	f.normalize()
	vm.filter = f
	_ = saveJSON(vm.store, KeyFilter, f)
}

// ClearFilters resets the filter to its defaults.
func (vm *ViewModel) ClearFilters() { vm.SetFilter(DefaultFilter()) }

// Visible computes the filtered, sorted projection of the holdings list.
// It is recomputed on every call, never cached across mutations. With the
// default filter it returns the full list in original order.
func (vm *ViewModel) Visible() []Holding {
	visible := make([]Holding, 0, len(vm.holdings))
	for _, h := range vm.holdings {
		if vm.filter.Matches(h) {
			visible = append(visible, h)
		}
	}
	vm.filter.sortHoldings(visible, vm.rates, vm.display, language.Make(vm.locale))
	return visible
}

// DisplayCurrency returns the active display currency code.
func (vm *ViewModel) DisplayCurrency() string { return vm.display }

// SetDisplayCurrency switches and persists the display currency.
func (vm *ViewModel) SetDisplayCurrency(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return
	}
	vm.display = code
	_ = vm.store.SetItem(KeyCurrency, code)
}

// Rates returns a copy of the active rate table. Mutations go through
// SetRate so they are coerced and persisted.
func (vm *ViewModel) Rates() RateTable {
	rates := make(RateTable, len(vm.rates))
	for code, rate := range vm.rates {
		rates[code] = rate
	}
	return rates
}

// SetRate stores and persists a rate-to-USD, coercing unusable values to
// the built-in default.
func (vm *ViewModel) SetRate(code string, rate float64) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return
	}
	vm.rates.Set(code, rate)
	_ = saveJSON(vm.store, KeyRates, vm.rates)
}

// Convert converts between currencies through the USD pivot.
func (vm *ViewModel) Convert(amount float64, from, to string) float64 {
	return vm.rates.Convert(amount, from, to)
}

// toDisplay converts an amount from a holding currency to the display
// currency.
func (vm *ViewModel) toDisplay(amount float64, from string) float64 {
	return vm.rates.Convert(amount, from, vm.display)
}

// Targets returns a copy of the allocation targets by category.
// Mutations go through SetTarget so they are clamped and persisted.
func (vm *ViewModel) Targets() map[Category]float64 {
	targets := make(map[Category]float64, len(vm.targets))
	for c, pct := range vm.targets {
		targets[c] = pct
	}
	return targets
}

// SetTarget stores and persists one category's target percent, clamped to
// 0-100.
func (vm *ViewModel) SetTarget(c Category, percent float64) {
	if c == Unknown {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	vm.targets[c] = percent
	_ = saveJSON(vm.store, KeyTargets, vm.targets)
}

// Budget returns the monthly budget, 0 when unset.
func (vm *ViewModel) Budget() float64 { return vm.budget }

// SetBudget stores and persists the monthly budget. Negative or
// non-finite input clears it.
func (vm *ViewModel) SetBudget(amount float64) {
	if amount < 0 || !isFinite(amount) {
		amount = 0
	}
	vm.budget = amount
	_ = saveJSON(vm.store, KeyBudget, amount)
}

// --- presets ---

// Presets returns the saved view presets.
func (vm *ViewModel) Presets() []Preset { return vm.presets }

// SavePreset snapshots the current filter under a name, replacing any
// preset with the same name.
func (vm *ViewModel) SavePreset(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("preset name is empty")
	}
	preset := Preset{Name: name, Filter: vm.filter}
	replaced := false
	for i, p := range vm.presets {
		if p.Name == name {
			vm.presets[i] = preset
			replaced = true
			break
		}
	}
	if !replaced {
		vm.presets = append(vm.presets, preset)
	}
	return saveJSON(vm.store, KeyPresets, vm.presets)
}

// ApplyPreset restores a saved filter.
func (vm *ViewModel) ApplyPreset(name string) error {
	for _, p := range vm.presets {
		if p.Name == name {
			vm.SetFilter(p.Filter)
			return nil
		}
	}
	return fmt.Errorf("unknown preset %q", name)
}

// RemovePreset deletes a saved preset.
func (vm *ViewModel) RemovePreset(name string) error {
	kept := vm.presets[:0]
	found := false
	for _, p := range vm.presets {
		if p.Name == name {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	vm.presets = kept
	if !found {
		return fmt.Errorf("unknown preset %q", name)
	}
	return saveJSON(vm.store, KeyPresets, vm.presets)
}

// --- history & timeline ---

// History returns the value snapshot series, oldest first.
func (vm *ViewModel) History() ValueHistory { return vm.history }

// Events returns the timeline, newest first.
func (vm *ViewModel) Events() []Event { return vm.events.Events }

// snapshot records the total converted market value, honoring the
// snapshot spacing, and persists whatever changed.
func (vm *ViewModel) snapshot() {
	total := 0.0
	for _, h := range vm.holdings {
		total += vm.toDisplay(h.MarketValue(), h.Currency)
	}
	if vm.history.Record(vm.now(), total) {
		_ = saveJSON(vm.store, KeyHistory, vm.history)
	}
}

func (vm *ViewModel) appendEvent(title, detail string) {
	vm.events.Prepend(vm.now(), title, detail)
	_ = saveJSON(vm.store, KeyEvents, vm.events)
}
