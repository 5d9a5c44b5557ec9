package data

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Field describes one column of an entity. Get and Set give the generic
// layers (stores, forms, screens) access to the struct without reflection.
type Field[T any] struct {
	Name     string // column and JSON name, e.g. "nama_manajer"
	Label    string // human label, e.g. "Nama Manajer"
	Required bool
	Numeric  bool
	Options  []string // non-nil restricts the value to one of these
	Get      func(*T) string
	Set      func(*T, string)
}

// Schema is the metadata for one entity type. Fields[0] is always the identifier
// and Fields[1] the value used to display a record in lists.
type Schema[T any] struct {
	Name   string // "manajer"
	Title  string // "Manajer"
	Table  string
	Fields []Field[T]
}

func (s *Schema[T]) Key() Field[T] {
	return s.Fields[0]
}

func (s *Schema[T]) ID(v T) string {
	return s.Fields[0].Get(&v)
}

func (s *Schema[T]) SetID(v *T, id string) {
	s.Fields[0].Set(v, id)
}

func (s *Schema[T]) DisplayName(v T) string {
	return s.Fields[1].Get(&v)
}

// Field looks up a declared field by column name.
func (s *Schema[T]) Field(name string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (s *Schema[T]) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Values returns the field values of v in column order.
func (s *Schema[T]) Values(v T) []string {
	vals := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		vals[i] = f.Get(&v)
	}
	return vals
}

// AssignID gives v a fresh UUID when its identifier is blank.
func (s *Schema[T]) AssignID(v *T) {
	if strings.TrimSpace(s.Fields[0].Get(v)) == "" {
		s.SetID(v, uuid.NewString())
	}
}

// decimal is the accepted spelling of numeric fields: no exponents, hex or
// NaN/Inf words.
var decimal = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// Validate checks every non-identifier field of v and returns a *ValidationError
// for the first one that fails. A blank identifier is allowed; stores assign one.
func (s *Schema[T]) Validate(v T) error {
	for _, f := range s.Fields[1:] {
		value := strings.TrimSpace(f.Get(&v))
		if value == "" {
			if f.Required {
				return &ValidationError{Field: f.Name, Reason: "is required"}
			}
			continue
		}
		if f.Numeric {
			if !decimal.MatchString(value) {
				return &ValidationError{Field: f.Name, Reason: "must be a number"}
			}
			n, err := strconv.ParseFloat(value, 64)
			if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
				return &ValidationError{Field: f.Name, Reason: "must be a number"}
			}
			if n < 0 {
				return &ValidationError{Field: f.Name, Reason: "must not be negative"}
			}
		}
		if f.Options != nil && !slices.Contains(f.Options, value) {
			return &ValidationError{
				Field:  f.Name,
				Reason: fmt.Sprintf("must be one of %s", strings.Join(f.Options, ", ")),
			}
		}
	}
	return nil
}

// CreateTableSQL renders the DDL used by stores that do not run migrations.
func (s *Schema[T]) CreateTableSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", s.Table)
	for i, f := range s.Fields {
		if i == 0 {
			fmt.Fprintf(&b, "\t%s VARCHAR PRIMARY KEY", f.Name)
		} else {
			fmt.Fprintf(&b, ",\n\t%s VARCHAR NOT NULL DEFAULT ''", f.Name)
		}
	}
	b.WriteString("\n)")
	return b.String()
}

// EntityNames lists the entity names in menu order.
var EntityNames = []string{"manajer", "jenis", "pemilik", "properti"}

var ManajerSchema = &Schema[Manajer]{
	Name:  "manajer",
	Title: "Manajer",
	Table: "manajer",
	Fields: []Field[Manajer]{
		{Name: "id_manajer", Label: "ID Manajer",
			Get: func(m *Manajer) string { return m.ID }, Set: func(m *Manajer, v string) { m.ID = v }},
		{Name: "nama_manajer", Label: "Nama Manajer", Required: true,
			Get: func(m *Manajer) string { return m.Nama }, Set: func(m *Manajer, v string) { m.Nama = v }},
		{Name: "kontak_manajer", Label: "Kontak Manajer", Required: true,
			Get: func(m *Manajer) string { return m.Kontak }, Set: func(m *Manajer, v string) { m.Kontak = v }},
	},
}

var JenisSchema = &Schema[Jenis]{
	Name:  "jenis",
	Title: "Jenis",
	Table: "jenis",
	Fields: []Field[Jenis]{
		{Name: "id_jenis", Label: "ID Jenis",
			Get: func(j *Jenis) string { return j.ID }, Set: func(j *Jenis, v string) { j.ID = v }},
		{Name: "nama_jenis", Label: "Nama Jenis", Required: true,
			Get: func(j *Jenis) string { return j.Nama }, Set: func(j *Jenis, v string) { j.Nama = v }},
		{Name: "deskripsi_jenis", Label: "Deskripsi",
			Get: func(j *Jenis) string { return j.Deskripsi }, Set: func(j *Jenis, v string) { j.Deskripsi = v }},
	},
}

var PemilikSchema = &Schema[Pemilik]{
	Name:  "pemilik",
	Title: "Pemilik",
	Table: "pemilik",
	Fields: []Field[Pemilik]{
		{Name: "id_pemilik", Label: "ID Pemilik",
			Get: func(p *Pemilik) string { return p.ID }, Set: func(p *Pemilik, v string) { p.ID = v }},
		{Name: "nama_pemilik", Label: "Nama Pemilik", Required: true,
			Get: func(p *Pemilik) string { return p.Nama }, Set: func(p *Pemilik, v string) { p.Nama = v }},
		{Name: "alamat_pemilik", Label: "Alamat Pemilik", Required: true,
			Get: func(p *Pemilik) string { return p.Alamat }, Set: func(p *Pemilik, v string) { p.Alamat = v }},
		{Name: "kontak_pemilik", Label: "Kontak Pemilik", Required: true,
			Get: func(p *Pemilik) string { return p.Kontak }, Set: func(p *Pemilik, v string) { p.Kontak = v }},
	},
}

// PropertiStatuses are the accepted values of status_properti.
var PropertiStatuses = []string{"Tersedia", "Disewa", "Terjual"}

var PropertiSchema = &Schema[Properti]{
	Name:  "properti",
	Title: "Properti",
	Table: "properti",
	Fields: []Field[Properti]{
		{Name: "id_properti", Label: "ID Properti",
			Get: func(p *Properti) string { return p.ID }, Set: func(p *Properti, v string) { p.ID = v }},
		{Name: "nama_properti", Label: "Nama Properti", Required: true,
			Get: func(p *Properti) string { return p.Nama }, Set: func(p *Properti, v string) { p.Nama = v }},
		{Name: "deskripsi_properti", Label: "Deskripsi",
			Get: func(p *Properti) string { return p.Deskripsi }, Set: func(p *Properti, v string) { p.Deskripsi = v }},
		{Name: "lokasi", Label: "Lokasi", Required: true,
			Get: func(p *Properti) string { return p.Lokasi }, Set: func(p *Properti, v string) { p.Lokasi = v }},
		{Name: "harga", Label: "Harga", Required: true, Numeric: true,
			Get: func(p *Properti) string { return p.Harga }, Set: func(p *Properti, v string) { p.Harga = v }},
		{Name: "status_properti", Label: "Status", Required: true, Options: PropertiStatuses,
			Get: func(p *Properti) string { return p.Status }, Set: func(p *Properti, v string) { p.Status = v }},
		{Name: "id_jenis", Label: "ID Jenis", Required: true,
			Get: func(p *Properti) string { return p.JenisID }, Set: func(p *Properti, v string) { p.JenisID = v }},
		{Name: "id_pemilik", Label: "ID Pemilik", Required: true,
			Get: func(p *Properti) string { return p.PemilikID }, Set: func(p *Properti, v string) { p.PemilikID = v }},
		{Name: "id_manajer", Label: "ID Manajer", Required: true,
			Get: func(p *Properti) string { return p.ManajerID }, Set: func(p *Properti, v string) { p.ManajerID = v }},
	},
}
