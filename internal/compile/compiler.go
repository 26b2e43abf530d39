package compile

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"chartspec/internal/adapter"
	"chartspec/internal/builder"
	"chartspec/internal/chart"
	"chartspec/internal/diagnostic"
	"chartspec/internal/locale"
	"chartspec/internal/match"
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// Config holds compiler settings.
type Config struct {
	// Locale is used for documents that do not set one. Empty keeps en-US.
	Locale string
	// InlineData copies the chart data into the table data source.
	InlineData bool
	// Indent is the JSON indentation of CompileDocument output. Empty is compact.
	Indent string
	// CacheSize is the number of compiled documents kept (0 disables caching).
	CacheSize int
	// Logger receives debug output. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default compiler configuration.
func DefaultConfig() Config {
	return Config{
		Indent:    "  ",
		CacheSize: 128,
	}
}

// Result is the output of one compilation.
type Result struct {
	// Spec is the finished specification.
	Spec *vega.Spec
	// Data is the chart dataset, shipped separately unless inlined.
	Data []chart.Datum
	// Diagnostics lists non-fatal notes about the document.
	Diagnostics diagnostic.Diagnostics
}

// Document is the output of CompileDocument.
type Document struct {
	JSON        []byte
	Diagnostics diagnostic.Diagnostics
}

// clone copies the JSON so callers never share the cached slice.
func (d Document) clone() Document {
	return Document{JSON: bytes.Clone(d.JSON), Diagnostics: d.Diagnostics}
}

// Compiler compiles chart trees. It is safe for concurrent use.
type Compiler struct {
	config Config
	l      *slog.Logger
	cache  *lru.Cache[string, Document]
}

// New creates a Compiler.
func New(config Config) (*Compiler, error) {
	c := &Compiler{
		config: config,
		l:      config.Logger,
	}

	if c.l == nil {
		c.l = slog.Default().With(slog.String("module", "compile"))
	}

	if config.CacheSize > 0 {
		cache, err := lru.New[string, Document](config.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create document cache: %w", err)
		}

		c.cache = cache
	}

	return c, nil
}

// Compile builds the specification for root.
func (c *Compiler) Compile(root chart.Chart) Result {
	var diags diagnostic.Diagnostics

	diags.Merge(unknownChildren(root))

	if root.Locale == nil && c.config.Locale != "" {
		loc := locale.Code(c.config.Locale)
		root.Locale = &loc
	}

	chartOptions := adapter.GetChartOptions(root)
	chartSpec := options.ApplyChartDefaults(chartOptions)

	for _, slot := range locale.Fallbacks(chartSpec.Locale) {
		diags.AddInfo(
			diagnostic.CodeLocaleFallback,
			fmt.Sprintf("%s locale is not supported, using %s", slot, locale.DefaultCode),
			"",
			"chart",
		)
	}

	spec := builder.InitializeSpec(chartSpec)

	c.addMarks(spec, chartSpec, chartOptions.Marks)

	for i, o := range chartOptions.Axes {
		axis := options.ApplyAxisDefaults(o, chartSpec.MarkContext(i))

		if _, ok := builder.ResolveAxisScale(spec, axis); !ok {
			diags.AddInfo(
				diagnostic.CodeAxisDefaultScale,
				fmt.Sprintf("no %s scale found, adding a default one", axis.Channel()),
				axis.Name,
				fmt.Sprintf("chart/axis[%d]", i),
			)
		}

		builder.AddAxis(spec, axis)
		c.l.Debug("added axis", slog.String("name", axis.Name), slog.String("position", string(axis.Position)))
	}

	for i, o := range chartOptions.Legends {
		legend := options.ApplyLegendDefaults(o, chartSpec.MarkContext(i))
		builder.AddLegend(spec, legend)
		c.l.Debug("added legend", slog.String("name", legend.Name))
	}

	for _, o := range chartOptions.Titles {
		title := options.ApplyTitleDefaults(o)
		builder.AddTitle(spec, title)
		c.l.Debug("added title", slog.String("text", title.Text))
	}

	builder.FinalizeSpec(spec)
	builder.RemoveUnusedFacetScales(spec)

	if c.config.InlineData {
		inlineData(spec, chartSpec.Data)
	}

	return Result{
		Spec:        spec,
		Data:        chartSpec.Data,
		Diagnostics: diags,
	}
}

// unknownChildren warns about every element its parent does not accept.
func unknownChildren(root chart.Chart) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, u := range adapter.FindUnknownChildren(root) {
		tag := u.Child.Kind().Tag()
		if unknown, ok := u.Child.(chart.Unknown); ok {
			tag = unknown.Tag
		}

		diags.AddWarning(
			diagnostic.CodeUnknownChild,
			fmt.Sprintf("child %q is ignored", tag),
			tag,
			u.Path,
			match.Suggest(tag, adapter.AcceptedTags(u.Parent))...,
		)
	}

	return diags
}

// addMarks adds marks in document order. Each kind is indexed separately.
func (c *Compiler) addMarks(spec *vega.Spec, chartSpec options.ChartSpecOptions, marks []options.MarkOptions) {
	counts := make(map[chart.Kind]int)

	for _, m := range marks {
		ctx := chartSpec.MarkContext(counts[m.Kind()])
		counts[m.Kind()]++

		var name string

		switch o := m.(type) {
		case options.BarOptions:
			s := options.ApplyBarDefaults(o, ctx)
			builder.AddBar(spec, s)
			name = s.Name
		case options.LineOptions:
			s := options.ApplyLineDefaults(o, ctx)
			builder.AddLine(spec, s)
			name = s.Name
		case options.AreaOptions:
			s := options.ApplyAreaDefaults(o, ctx)
			builder.AddArea(spec, s)
			name = s.Name
		case options.ScatterOptions:
			s := options.ApplyScatterDefaults(o, ctx)
			builder.AddScatter(spec, s)
			name = s.Name
		case options.DonutOptions:
			s := options.ApplyDonutDefaults(o, ctx)
			builder.AddDonut(spec, s)
			name = s.Name
		case options.ComboOptions:
			s := options.ApplyComboDefaults(o, ctx)
			builder.AddCombo(spec, s)
			name = s.Name
		case options.BulletOptions:
			s := options.ApplyBulletDefaults(o, ctx)
			builder.AddBullet(spec, s)
			name = s.Name
		case options.SunburstOptions:
			s := options.ApplySunburstDefaults(o, ctx)
			builder.AddSunburst(spec, s)
			name = s.Name
		default:
			c.l.Warn("unsupported mark skipped", slog.String("kind", m.Kind().String()))

			continue
		}

		c.l.Debug("added mark", slog.String("kind", m.Kind().String()), slog.String("name", name))
	}
}

func inlineData(spec *vega.Spec, data []chart.Datum) {
	table := spec.DataSource(vega.TableData)
	if table == nil {
		return
	}

	values := make([]any, len(data))
	for i, d := range data {
		values[i] = d
	}

	table.Values = values
}

// CompileDocument parses a YAML chart document and returns its specification
// as JSON. Results are cached by document digest.
func (c *Compiler) CompileDocument(doc []byte) (Document, error) {
	key := c.cacheKey(doc)

	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			c.l.Debug("document cache hit", slog.String("digest", key[:12]))

			return cached.clone(), nil
		}
	}

	root, err := chart.Parse(doc)
	if err != nil {
		return Document{}, err
	}

	result := c.Compile(*root)

	out, err := vega.MarshalIndent(result.Spec, c.config.Indent)
	if err != nil {
		return Document{}, fmt.Errorf("failed to encode spec: %w", err)
	}

	compiled := Document{JSON: out, Diagnostics: result.Diagnostics}

	if c.cache != nil {
		c.cache.Add(key, compiled.clone())
	}

	return compiled, nil
}

// cacheKey digests the document together with the settings that change the output.
func (c *Compiler) cacheKey(doc []byte) string {
	h := sha256.New()
	h.Write(doc)
	h.Write([]byte{0})
	h.Write([]byte(c.config.Locale))
	h.Write([]byte{0})
	h.Write([]byte(c.config.Indent))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatBool(c.config.InlineData)))

	return hex.EncodeToString(h.Sum(nil))
}

// CacheLen returns the number of cached documents.
func (c *Compiler) CacheLen() int {
	if c.cache == nil {
		return 0
	}

	return c.cache.Len()
}
