package cli

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	builtindocs "github.com/makery/addressapp/docs"
	"github.com/makery/addressapp/internal/ui"
)

const guideRoot = "guide"

var guideFS fs.FS = builtindocs.FS

type guideTopic struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

type guideIndex struct {
	Topics map[string]struct {
		Title string `yaml:"title"`
		Path  string `yaml:"path"`
	} `yaml:"topics"`
	Order []string `yaml:"order"`
}

// listGuideTopics reads the bundled index in its declared order.
func listGuideTopics() ([]guideTopic, error) {
	data, err := fs.ReadFile(guideFS, path.Join(guideRoot, "index.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read guide index: %w", err)
	}
	var idx guideIndex
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse guide index: %w", err)
	}

	topics := make([]guideTopic, 0, len(idx.Order))
	for _, id := range idx.Order {
		meta, ok := idx.Topics[id]
		if !ok {
			return nil, fmt.Errorf("guide index orders unknown topic %q", id)
		}
		topics = append(topics, guideTopic{ID: id, Title: meta.Title, Path: meta.Path})
	}
	return topics, nil
}

func findGuideTopic(topics []guideTopic, id string) (guideTopic, bool) {
	id = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(id), ".md"))
	for _, t := range topics {
		if t.ID == id {
			return t, true
		}
	}
	return guideTopic{}, false
}

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Read the bundled guides",
	Long: `Shows the guides bundled into the addr binary.

Without a topic, lists the available guides.

Examples:
  addr guide
  addr guide file-format`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listGuideTopics()
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{"topics": topics}, &Meta{Count: len(topics)})
				return nil
			}
			fmt.Println(ui.Header("Guides"))
			tbl := ui.NewTable(2)
			for _, t := range topics {
				tbl.AddRow(ui.Bold.Render(t.ID), t.Title)
			}
			fmt.Print(tbl.String())
			fmt.Println(ui.Hint("Run 'addr guide <topic>' to read one."))
			return nil
		}

		topic, ok := findGuideTopic(topics, args[0])
		if !ok {
			ids := make([]string, len(topics))
			for i, t := range topics {
				ids[i] = t.ID
			}
			return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("unknown guide %q", args[0]),
				"Available guides: "+strings.Join(ids, ", "))
		}

		content, err := fs.ReadFile(guideFS, path.Join(guideRoot, topic.Path))
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"id":      topic.ID,
				"title":   topic.Title,
				"content": string(content),
			}, nil)
			return nil
		}

		rendered, err := ui.RenderMarkdown(string(content), ui.NewDisplayContext().TermWidth)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
