package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/makery/addressapp/internal/app"
	"github.com/makery/addressapp/internal/dates"
	"github.com/makery/addressapp/internal/editor"
	"github.com/makery/addressapp/internal/model"
	"github.com/makery/addressapp/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List persons",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		persons := shell.Persons()

		if isJSONOutput() {
			results := make([]PersonResult, len(persons))
			for i, p := range persons {
				results[i] = personResult(i, p)
			}
			meta := &Meta{Count: len(results)}
			if path, ok, _ := shell.CurrentFilePath(); ok {
				meta.File = path
			}
			outputSuccess(map[string]interface{}{"persons": results}, meta)
			return nil
		}

		if len(persons) == 0 {
			fmt.Println(ui.Hint("No persons. Add one with 'addr add'."))
			return nil
		}

		grid := ui.NewGrid(ui.NewDisplayContext(), ui.PersonColumns)
		for i, p := range persons {
			birthday, _ := dates.Format(p.Birthday)
			grid.AddRow(
				ui.FormatRowNum(i+1, len(persons)),
				p.FullName(),
				p.Street,
				strconv.Itoa(p.PostalCode),
				p.City,
				birthday,
			)
		}
		fmt.Println(grid.Render())
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <person>",
	Short: "Show one person",
	Long: `Shows the details of one person.

A person is referred to by its index in 'addr list' or by name:
  addr show 3
  addr show hans-muster
  addr show "Hans Muster"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, p, err := resolvePerson(args[0])
		if err != nil {
			return handlePersonError(err)
		}
		if isJSONOutput() {
			outputSuccess(personResult(idx, p), nil)
			return nil
		}
		printPerson(idx, p)
		return nil
	},
}

func printPerson(idx int, p *model.Person) {
	birthday, ok := dates.Format(p.Birthday)
	if !ok {
		birthday = ui.Hint("unknown")
	}

	fmt.Printf("%s %s\n", ui.Name(p.FullName()), ui.Hint(fmt.Sprintf("#%d", idx+1)))
	tbl := ui.NewTable(2)
	tbl.AddRow(ui.Muted.Render("First name"), p.FirstName)
	tbl.AddRow(ui.Muted.Render("Last name"), p.LastName)
	tbl.AddRow(ui.Muted.Render("Street"), p.Street)
	tbl.AddRow(ui.Muted.Render("Postal code"), strconv.Itoa(p.PostalCode))
	tbl.AddRow(ui.Muted.Render("City"), p.City)
	tbl.AddRow(ui.Muted.Render("Birthday"), birthday)
	fmt.Print(tbl.String())
}

var (
	addFirst      string
	addLast       string
	addStreet     string
	addPostalCode string
	addCity       string
	addBirthday   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a person",
	Long: `Adds a person to the end of the address book.

All fields are required; the birthday uses the format dd.MM.yyyy.

Examples:
  addr add --first Hans --last Muster --street "Bahnhofstrasse 1" \
           --postal-code 8001 --city Zurich --birthday 21.02.1999`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := editor.Validate(editor.Form{
			FirstName:  addFirst,
			LastName:   addLast,
			Street:     addStreet,
			PostalCode: addPostalCode,
			City:       addCity,
			Birthday:   addBirthday,
		})
		if err != nil {
			return handleError(ErrValidationFailed, err, "Run 'addr add --help' for the expected fields")
		}

		person := &p
		shell.Add(person)
		return reportChange(personResult(shell.IndexOf(person), person), "Added "+ui.Name(person.FullName()))
	},
}

var editSet []string

var editCmd = &cobra.Command{
	Use:   "edit <person>",
	Short: "Edit a person",
	Long: `Edits one person.

With --set, the given fields are changed directly. Without it, the person is
opened as a small YAML form in your editor (config 'editor' or $EDITOR);
leaving the form unchanged or empty cancels the edit.

Fields: first_name, last_name, street, postal_code, city, birthday (dd.MM.yyyy)

Examples:
  addr edit 2 --set city=Bern --set postal_code=3011
  addr edit hans-muster`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, p, err := resolvePerson(args[0])
		if err != nil {
			return handlePersonError(err)
		}

		var ed app.Editor
		if len(editSet) > 0 {
			assignments, err := editor.ParseAssignments(editSet)
			if err != nil {
				return handleError(ErrUnknownField, err, "")
			}
			ed = editor.FieldEditor{Assignments: assignments}
		} else {
			if isJSONOutput() {
				return handleErrorMsg(ErrMissingArgument, "--set is required with --json", "Use --set field=value")
			}
			ed = editor.TextEditor{
				Command: getConfig().GetEditor(),
				Stdin:   os.Stdin,
				Stdout:  os.Stdout,
				Stderr:  os.Stderr,
			}
		}

		accepted, err := shell.EditOne(p, ed)
		if err != nil {
			suggestion := ""
			if errorCode(err) == ErrEditorFailed {
				suggestion = "Set 'editor' in config.toml or $EDITOR, or use --set field=value"
			}
			return handleError(errorCode(err), err, suggestion)
		}
		if !accepted {
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{"accepted": false}, nil)
				return nil
			}
			fmt.Println(ui.Hint("Edit cancelled; nothing changed."))
			return nil
		}
		return reportChange(personResult(idx, p), "Updated "+ui.Name(p.FullName()))
	},
}

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <person>",
	Aliases: []string{"rm"},
	Short:   "Delete a person",
	Long: `Removes one person from the address book.

Asks for confirmation in a terminal unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, p, err := resolvePerson(args[0])
		if err != nil {
			return handlePersonError(err)
		}

		if !deleteForce {
			if !shouldPromptForConfirm() {
				return handleErrorMsg(ErrConfirmationRequired, "refusing to delete without confirmation", "Use --force")
			}
			if !promptForConfirm(fmt.Sprintf("Delete %s?", ui.Name(p.FullName()))) {
				fmt.Println(ui.Hint("Cancelled."))
				return nil
			}
		}

		removed, err := shell.Delete(idx)
		if err != nil {
			return handleError(errorCode(err), err, "")
		}
		return reportChange(personResult(idx, removed), "Deleted "+ui.Name(removed.FullName()))
	},
}

func init() {
	addCmd.Flags().StringVar(&addFirst, "first", "", "First name")
	addCmd.Flags().StringVar(&addLast, "last", "", "Last name")
	addCmd.Flags().StringVar(&addStreet, "street", "", "Street")
	addCmd.Flags().StringVar(&addPostalCode, "postal-code", "", "Postal code (integer)")
	addCmd.Flags().StringVar(&addCity, "city", "", "City")
	addCmd.Flags().StringVar(&addBirthday, "birthday", "", "Birthday (dd.MM.yyyy)")

	editCmd.Flags().StringArrayVar(&editSet, "set", nil, "Set a field (field=value, repeatable)")
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without asking")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}
