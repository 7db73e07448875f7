package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docflow-ai/docflow/internal/tools"
)

// --- Template tools ---

// GenerateInput is the input for the generate_document tool.
type GenerateInput struct {
	Template  string            `json:"template"            jsonschema:"template path or name in the templates directory"`
	Variables map[string]string `json:"variables,omitempty" jsonschema:"placeholder values keyed by identifier"`
	Output    string            `json:"output"              jsonschema:"base output path; a timestamp suffix is appended"`
	Strict    bool              `json:"strict,omitempty"    jsonschema:"fail when any placeholder has no value"`
}

// GenerateOutput is the output for the generate_document tool.
type GenerateOutput struct {
	Path string `json:"path" jsonschema:"path of the generated document"`
}

func handleGenerate(toolset *tools.Toolset) mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		path, err := toolset.GenerateDocument(ctx, input.Template, input.Variables, input.Output, input.Strict)
		if err != nil {
			return nil, GenerateOutput{}, err
		}
		return nil, GenerateOutput{Path: path}, nil
	}
}

// TemplateInput identifies a template.
type TemplateInput struct {
	Template string `json:"template" jsonschema:"template path or name in the templates directory"`
}

// VariablesOutput is the output for the template_variables tool.
type VariablesOutput struct {
	Variables []string `json:"variables" jsonschema:"placeholder identifiers in first-occurrence order"`
	Count     int      `json:"count"     jsonschema:"number of distinct placeholders"`
}

func handleVariables(toolset *tools.Toolset) mcp.ToolHandlerFor[TemplateInput, VariablesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TemplateInput) (*mcp.CallToolResult, VariablesOutput, error) {
		variables, err := toolset.TemplateVariables(input.Template)
		if err != nil {
			return nil, VariablesOutput{}, err
		}
		return nil, VariablesOutput{Variables: variables, Count: len(variables)}, nil
	}
}

// ValidateOutput is the output for the validate_template tool.
type ValidateOutput struct {
	Valid     bool     `json:"valid"     jsonschema:"template parses and has at least one placeholder"`
	Variables []string `json:"variables" jsonschema:"placeholder identifiers found"`
}

func handleValidate(toolset *tools.Toolset) mcp.ToolHandlerFor[TemplateInput, ValidateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TemplateInput) (*mcp.CallToolResult, ValidateOutput, error) {
		report, err := toolset.ValidateTemplate(input.Template)
		if err != nil {
			return nil, ValidateOutput{}, err
		}
		return nil, ValidateOutput{Valid: report.Valid, Variables: report.Variables}, nil
	}
}

// --- Document tools ---

// PathInput identifies a document or folder.
type PathInput struct {
	Path string `json:"path" jsonschema:"file or folder path"`
}

// ReadOutput is the output for the read_document tool.
type ReadOutput struct {
	Text string `json:"text" jsonschema:"paragraph text joined with newlines"`
}

func handleRead(toolset *tools.Toolset) mcp.ToolHandlerFor[PathInput, ReadOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, ReadOutput, error) {
		text, err := toolset.ReadDocument(input.Path)
		if err != nil {
			return nil, ReadOutput{}, err
		}
		return nil, ReadOutput{Text: text}, nil
	}
}

// TextInput carries a path plus paragraph text.
type TextInput struct {
	Path string `json:"path"           jsonschema:"document path"`
	Text string `json:"text,omitempty" jsonschema:"paragraph text"`
}

// EmptyOutput is for tools whose success needs no data.
type EmptyOutput struct{}

func handleCreate(toolset *tools.Toolset) mcp.ToolHandlerFor[TextInput, EmptyOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TextInput) (*mcp.CallToolResult, EmptyOutput, error) {
		return nil, EmptyOutput{}, toolset.CreateDocument(ctx, input.Path, input.Text)
	}
}

func handleAppend(toolset *tools.Toolset) mcp.ToolHandlerFor[TextInput, EmptyOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TextInput) (*mcp.CallToolResult, EmptyOutput, error) {
		return nil, EmptyOutput{}, toolset.AppendDocument(ctx, input.Path, input.Text)
	}
}

// --- File tools ---

// ListInput is the input for the list_files tool.
type ListInput struct {
	Directory string `json:"directory,omitempty" jsonschema:"directory to list; defaults to the current one"`
}

// ListOutput is the output for the list_files tool.
type ListOutput struct {
	Names []string `json:"names" jsonschema:"entry names, sorted"`
}

func handleList(toolset *tools.Toolset) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		names, err := toolset.ListFiles(input.Directory)
		if err != nil {
			return nil, ListOutput{}, err
		}
		return nil, ListOutput{Names: names}, nil
	}
}

// TransferInput carries a source and destination path.
type TransferInput struct {
	Source      string `json:"source"      jsonschema:"source file path"`
	Destination string `json:"destination" jsonschema:"destination path; a directory appends the source name"`
}

// TransferOutput reports the final destination.
type TransferOutput struct {
	Path string `json:"path" jsonschema:"final destination path"`
}

func handleCopy(toolset *tools.Toolset) mcp.ToolHandlerFor[TransferInput, TransferOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TransferInput) (*mcp.CallToolResult, TransferOutput, error) {
		dest, err := toolset.CopyFile(ctx, input.Source, input.Destination)
		if err != nil {
			return nil, TransferOutput{}, err
		}
		return nil, TransferOutput{Path: dest}, nil
	}
}

func handleMove(toolset *tools.Toolset) mcp.ToolHandlerFor[TransferInput, TransferOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TransferInput) (*mcp.CallToolResult, TransferOutput, error) {
		dest, err := toolset.MoveFile(ctx, input.Source, input.Destination)
		if err != nil {
			return nil, TransferOutput{}, err
		}
		return nil, TransferOutput{Path: dest}, nil
	}
}

func handleDeleteFile(toolset *tools.Toolset) mcp.ToolHandlerFor[PathInput, EmptyOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, EmptyOutput, error) {
		return nil, EmptyOutput{}, toolset.DeleteFile(ctx, input.Path)
	}
}

func handleCreateFolder(toolset *tools.Toolset) mcp.ToolHandlerFor[PathInput, EmptyOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, EmptyOutput, error) {
		return nil, EmptyOutput{}, toolset.CreateFolder(ctx, input.Path)
	}
}

func handleDeleteFolder(toolset *tools.Toolset) mcp.ToolHandlerFor[PathInput, EmptyOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, EmptyOutput, error) {
		return nil, EmptyOutput{}, toolset.DeleteFolder(ctx, input.Path)
	}
}

// registerTools adds all Docflow tools to the server.
func registerTools(server *mcp.Server, toolset *tools.Toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_document",
		Description: "Render a .docx template with placeholder values and write a uniquely named document.",
		Annotations: writeAnnotations(),
	}, handleGenerate(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "template_variables",
		Description: "List the {{ placeholder }} variables of a .docx template in first-occurrence order.",
		Annotations: readOnlyAnnotations(),
	}, handleVariables(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_template",
		Description: "Check that a .docx template parses and contains at least one placeholder.",
		Annotations: readOnlyAnnotations(),
	}, handleValidate(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_document",
		Description: "Read the paragraph text of a .docx document.",
		Annotations: readOnlyAnnotations(),
	}, handleRead(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_document",
		Description: "Create a new .docx document with the given text.",
		Annotations: writeAnnotations(),
	}, handleCreate(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "append_document",
		Description: "Append a paragraph to an existing .docx document.",
		Annotations: writeAnnotations(),
	}, handleAppend(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_files",
		Description: "List the entries of a directory.",
		Annotations: readOnlyAnnotations(),
	}, handleList(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy_file",
		Description: "Copy a file to another path or directory.",
		Annotations: writeAnnotations(),
	}, handleCopy(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_file",
		Description: "Move a file to another path or directory.",
		Annotations: destructiveAnnotations(),
	}, handleMove(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_file",
		Description: "Delete a single file.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteFile(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_folder",
		Description: "Create a folder along with any missing parents.",
		Annotations: writeAnnotations(),
	}, handleCreateFolder(toolset))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_folder",
		Description: "Delete a folder and everything in it.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteFolder(toolset))
}
