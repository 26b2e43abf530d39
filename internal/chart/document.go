package chart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Elements is an ordered list of child elements.
type Elements []Element

// UnmarshalYAML decodes a sequence of single-key maps, e.g.
//
//   - bar: {metric: people}
//   - tooltip: {}
//
// Unknown tags decode to Unknown; a null body decodes to the zero element.
func (e *Elements) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: children must be a list, got %v", node.Line, node.Kind)
	}

	out := make(Elements, 0, len(node.Content))

	for _, item := range node.Content {
		el, err := decodeElement(item)
		if err != nil {
			return err
		}

		out = append(out, el)
	}

	*e = out

	return nil
}

func decodeElement(item *yaml.Node) (Element, error) {
	if item.Kind == yaml.ScalarNode {
		// Bare tag with no props: "- tooltip".
		var tag string
		if err := item.Decode(&tag); err != nil {
			return nil, err
		}

		return newElement(tag, nil)
	}

	if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
		return nil, fmt.Errorf("line %d: expected single key map like {bar: {...}}", item.Line)
	}

	var tag string
	if err := item.Content[0].Decode(&tag); err != nil {
		return nil, fmt.Errorf("line %d: invalid element tag: %w", item.Line, err)
	}

	return newElement(tag, item.Content[1])
}

func newElement(tag string, body *yaml.Node) (Element, error) {
	switch KindFromTag(tag) {
	case KindBar:
		return decodeAs[Bar](tag, body)
	case KindLine:
		return decodeAs[Line](tag, body)
	case KindArea:
		return decodeAs[Area](tag, body)
	case KindScatter:
		return decodeAs[Scatter](tag, body)
	case KindDonut:
		return decodeAs[Donut](tag, body)
	case KindCombo:
		return decodeAs[Combo](tag, body)
	case KindBullet:
		return decodeAs[Bullet](tag, body)
	case KindSunburst:
		return decodeAs[Sunburst](tag, body)
	case KindAxis:
		return decodeAs[Axis](tag, body)
	case KindLegend:
		return decodeAs[Legend](tag, body)
	case KindTitle:
		return decodeTitle(body)
	case KindChartTooltip:
		return decodeAs[ChartTooltip](tag, body)
	case KindChartPopover:
		return decodeAs[ChartPopover](tag, body)
	case KindBarAnnotation:
		return decodeAs[BarAnnotation](tag, body)
	case KindTrendline:
		return decodeAs[Trendline](tag, body)
	case KindMetricRange:
		return decodeAs[MetricRange](tag, body)
	case KindReferenceLine:
		return decodeAs[ReferenceLine](tag, body)
	case KindDonutSummary:
		return decodeAs[DonutSummary](tag, body)
	case KindSegmentLabel:
		return decodeAs[SegmentLabel](tag, body)
	case KindScatterPath:
		return decodeAs[ScatterPath](tag, body)
	default:
		return Unknown{Tag: tag}, nil
	}
}

func decodeAs[T Element](tag string, body *yaml.Node) (Element, error) {
	var el T
	if body == nil || body.Tag == "!!null" {
		return el, nil
	}

	if err := body.Decode(&el); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", tag, err)
	}

	return el, nil
}

// decodeTitle also accepts the shorthand "- title: Revenue".
func decodeTitle(body *yaml.Node) (Element, error) {
	if body != nil && body.Kind == yaml.ScalarNode && body.Tag != "!!null" {
		return Title{Text: body.Value}, nil
	}

	return decodeAs[Title]("title", body)
}

// Parse parses a YAML chart document.
func Parse(data []byte) (*Chart, error) {
	var c Chart

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse chart YAML: %w", err)
	}

	return &c, nil
}

// LoadFile loads and parses a YAML chart document from path.
func LoadFile(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file %s: %w", path, err)
	}

	return Parse(data)
}
