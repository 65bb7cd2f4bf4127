package mcp

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wellsite-tools/fracfocus-mcp/internal/config"
	"github.com/wellsite-tools/fracfocus-mcp/internal/disclosure"
	"github.com/wellsite-tools/fracfocus-mcp/internal/fluidcalc"
	"github.com/wellsite-tools/fracfocus-mcp/internal/pdf"
)

// Server represents the MCP server instance
type Server struct {
	config            *config.Config
	disclosureService *disclosure.Service
	validator         *pdf.Validator
	mcpServer         *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, disclosureService *disclosure.Service) (*Server, error) {
	if disclosureService == nil {
		return nil, fmt.Errorf("disclosureService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:            cfg,
		disclosureService: disclosureService,
		validator:         pdf.NewValidator(cfg.MaxFileSize),
		mcpServer:         mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	fracExtractFileTool := mcp.NewTool(
		"frac_extract_file",
		mcp.WithDescription("Extract base water volume and chemical concentrations from a FracFocus disclosure PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the disclosure PDF"),
		),
	)
	s.mcpServer.AddTool(fracExtractFileTool, s.handleFracExtractFile)

	fracCalculateTool := mcp.NewTool(
		"frac_calculate",
		mcp.WithDescription("Calculate frac fluid volumes, weights and ratios from explicit input values"),
		mcp.WithNumber("total_water_volume",
			mcp.Description("Total base water volume in gallons"),
		),
		mcp.WithNumber("water_percent",
			mcp.Description("Water concentration (% by mass, 0-100)"),
		),
		mcp.WithNumber("hcl_percent",
			mcp.Description("HCL concentration (% by mass, 0-100)"),
		),
		mcp.WithNumber("proppant_percent_1",
			mcp.Description("Proppant concentration slot 1 (% by mass, 0-100)"),
		),
		mcp.WithNumber("proppant_percent_2",
			mcp.Description("Proppant concentration slot 2 (% by mass, 0-100)"),
		),
		mcp.WithNumber("proppant_percent_3",
			mcp.Description("Proppant concentration slot 3 (% by mass, 0-100)"),
		),
		mcp.WithNumber("proppant_percent_4",
			mcp.Description("Proppant concentration slot 4 (% by mass, 0-100)"),
		),
		mcp.WithNumber("proppant_percent_5",
			mcp.Description("Proppant concentration slot 5 (% by mass, 0-100)"),
		),
		mcp.WithNumber("proppant_percent_6",
			mcp.Description("Proppant concentration slot 6 (% by mass, 0-100)"),
		),
		mcp.WithString("gas_type",
			mcp.Description("Energizing gas: none, nitrogen or carbon-dioxide"),
		),
		mcp.WithNumber("gas_percent",
			mcp.Description("Gas concentration (% by mass, 0-100)"),
		),
	)
	s.mcpServer.AddTool(fracCalculateTool, s.handleFracCalculate)

	fracProcessFileTool := mcp.NewTool(
		"frac_process_file",
		mcp.WithDescription("Extract a disclosure PDF and run the fluid calculation, "+
			"with optional manual overrides taking precedence over extracted values"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the disclosure PDF"),
		),
		mcp.WithNumber("total_water_volume",
			mcp.Description("Override: total base water volume in gallons"),
		),
		mcp.WithNumber("water_percent",
			mcp.Description("Override: water concentration (% by mass)"),
		),
		mcp.WithNumber("hcl_percent",
			mcp.Description("Override: HCL concentration (% by mass)"),
		),
		mcp.WithNumber("proppant_percent_1",
			mcp.Description("Override: proppant concentration slot 1 (% by mass)"),
		),
		mcp.WithNumber("proppant_percent_2",
			mcp.Description("Override: proppant concentration slot 2 (% by mass)"),
		),
		mcp.WithNumber("proppant_percent_3",
			mcp.Description("Override: proppant concentration slot 3 (% by mass)"),
		),
		mcp.WithNumber("proppant_percent_4",
			mcp.Description("Override: proppant concentration slot 4 (% by mass)"),
		),
		mcp.WithNumber("proppant_percent_5",
			mcp.Description("Override: proppant concentration slot 5 (% by mass)"),
		),
		mcp.WithNumber("proppant_percent_6",
			mcp.Description("Override: proppant concentration slot 6 (% by mass)"),
		),
		mcp.WithString("gas_type",
			mcp.Description("Override: energizing gas (none, nitrogen, carbon-dioxide)"),
		),
		mcp.WithNumber("gas_percent",
			mcp.Description("Override: gas concentration (% by mass)"),
		),
	)
	s.mcpServer.AddTool(fracProcessFileTool, s.handleFracProcessFile)

	fracBatchDirectoryTool := mcp.NewTool(
		"frac_batch_directory",
		mcp.WithDescription("Process every disclosure PDF in a directory; "+
			"failed documents are reported alongside the successful rows"),
		mcp.WithString("directory",
			mcp.Description("Directory to process (uses default if empty)"),
		),
	)
	s.mcpServer.AddTool(fracBatchDirectoryTool, s.handleFracBatchDirectory)

	fracValidateFileTool := mcp.NewTool(
		"frac_validate_file",
		mcp.WithDescription("Validate that a file is a readable disclosure PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(fracValidateFileTool, s.handleFracValidateFile)

	fracSearchDirectoryTool := mcp.NewTool(
		"frac_search_directory",
		mcp.WithDescription("Search for disclosure PDFs in a directory"),
		mcp.WithString("directory",
			mcp.Description("Directory to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional filename filter"),
		),
	)
	s.mcpServer.AddTool(fracSearchDirectoryTool, s.handleFracSearchDirectory)

	fracServerInfoTool := mcp.NewTool(
		"frac_server_info",
		mcp.WithDescription("Get server information, available tools, disclosure directory contents and usage guidance"),
	)
	s.mcpServer.AddTool(fracServerInfoTool, s.handleFracServerInfo)
}

// Handler functions

func (s *Server) handleFracExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.disclosureService.ExtractFile(disclosure.ExtractFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Extracted fields from %s (%d pages, %d lines)\n\n",
		result.Path, result.Pages, result.Lines)
	responseText += s.formatExtractedFields(result.Fields)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFracCalculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	input := fluidcalc.Input{
		TotalWaterVolumeGal: int64(argFloat(args, "total_water_volume", 0)),
		WaterPercent:        argFloat(args, "water_percent", 0),
		HCLPercent:          argFloat(args, "hcl_percent", 0),
		ProppantPercents:    argProppantSlots(args),
		GasPercent:          argFloat(args, "gas_percent", 0),
	}

	if input.TotalWaterVolumeGal < 0 {
		return mcp.NewToolResultError("total_water_volume cannot be negative"), nil
	}

	gasType, err := fluidcalc.ParseGasType(argString(args, "gas_type", string(fluidcalc.GasNone)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	input.GasType = gasType

	result := fluidcalc.Calculate(input)
	massBalance := fluidcalc.CheckMassBalance(result.TotalMassPercent)

	return mcp.NewToolResultText(s.formatCalculationResult(result, massBalance)), nil
}

func (s *Server) handleFracProcessFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	overrides, err := parseOverrides(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.disclosureService.ProcessFile(disclosure.ProcessFileRequest{
		Path:      path,
		Overrides: overrides,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Processed %s\n\n", result.Path)
	responseText += s.formatExtractedFields(result.Fields)
	responseText += "\n"
	responseText += s.formatCalculationResult(result.Result, result.MassBalance)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFracBatchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.DisclosureDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	batch, err := s.disclosureService.ProcessDirectory(directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatBatchResult(directory, batch)), nil
}

func (s *Server) handleFracValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.validator.ValidateFile(pdf.ValidateFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFracSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.DisclosureDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	result, err := s.disclosureService.SearchDirectory(pdf.SearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.TotalCount == 0 {
		responseText := fmt.Sprintf("No disclosure PDFs found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
		return mcp.NewToolResultText(responseText), nil
	}

	return mcp.NewToolResultText(s.formatSearchDirectoryResult(result)), nil
}

func (s *Server) handleFracServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.formatServerInfo()), nil
}

// Argument helpers

func argFloat(args map[string]any, key string, fallback float64) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return fallback
}

func argString(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func argProppantSlots(args map[string]any) []float64 {
	slots := make([]float64, fluidcalc.ProppantSlots)
	for i := range slots {
		slots[i] = argFloat(args, fmt.Sprintf("proppant_percent_%d", i+1), 0)
	}
	return slots
}

func parseOverrides(args map[string]any) (disclosure.Overrides, error) {
	var overrides disclosure.Overrides

	if v, ok := args["total_water_volume"].(float64); ok {
		if v < 0 {
			return overrides, fmt.Errorf("total_water_volume cannot be negative")
		}
		volume := int64(v)
		overrides.TotalWaterVolumeGal = &volume
	}
	if v, ok := args["water_percent"].(float64); ok {
		overrides.WaterPercent = &v
	}
	if v, ok := args["hcl_percent"].(float64); ok {
		overrides.HCLPercent = &v
	}
	for i := 0; i < fluidcalc.ProppantSlots; i++ {
		if v, ok := args[fmt.Sprintf("proppant_percent_%d", i+1)].(float64); ok {
			value := v
			overrides.ProppantPercents[i] = &value
		}
	}
	if v, ok := args["gas_percent"].(float64); ok {
		overrides.GasPercent = &v
	}
	if v, ok := args["gas_type"].(string); ok && v != "" {
		gasType, err := fluidcalc.ParseGasType(v)
		if err != nil {
			return overrides, err
		}
		overrides.GasType = &gasType
	}

	return overrides, nil
}

// Formatting methods

func (s *Server) formatExtractedFields(fields *disclosure.ExtractedFields) string {
	text := "Extracted values:\n"
	if fields.TotalWaterVolumeGal != nil {
		text += fmt.Sprintf("  Total Base Water Volume (gallons): %d\n", *fields.TotalWaterVolumeGal)
	} else {
		text += "  Total Base Water Volume (gallons): not found\n"
	}
	text += fmt.Sprintf("  Water Concentration (%%): %s\n", formatOptionalPercent(fields.WaterPercent))
	text += fmt.Sprintf("  HCL Concentration (%%): %s\n", formatOptionalPercent(fields.HCLPercent))
	text += fmt.Sprintf("  Proppant Concentration (%%): %s\n", formatOptionalPercent(fields.ProppantPercent))
	text += fmt.Sprintf("  Gas Concentration (%%): %.5f (never extracted; set manually for energized jobs)\n",
		fields.GasPercent)
	return text
}

func (s *Server) formatCalculationResult(result *fluidcalc.Result,
	massBalance fluidcalc.MassBalanceStatus,
) string {
	text := "Calculation Results:\n"
	text += fmt.Sprintf("  Total Mass Percent: %.2f %% (%s)\n", result.TotalMassPercent, massBalance)
	text += fmt.Sprintf("  Total Water Weight (lbs): %.2f\n", result.TotalWaterWeightLbs)
	text += fmt.Sprintf("  Total Acid HCL Weight (lbs): %.2f\n", result.TotalAcidWeightLbs)
	text += fmt.Sprintf("  Total Acid HCL Volume (gallons): %.2f\n", result.TotalAcidVolumeGal)
	text += fmt.Sprintf("  Total Acid HCL Volume (bbl): %.2f\n", result.TotalAcidVolumeBbl)
	text += fmt.Sprintf("  Total FF Fluid Volume (gallons): %.2f\n", result.TotalFFFluidVolumeGal)
	text += fmt.Sprintf("  Total FF Fluid Volume (bbl): %.2f\n", result.TotalFFFluidVolumeBbl)
	text += fmt.Sprintf("  Total Proppant Weight (lbs): %.2f\n", result.TotalProppantWeightLbs)
	text += fmt.Sprintf("  Proppant Weight (tons): %.2f\n", result.ProppantWeightTons)
	text += fmt.Sprintf("  Proppant to Fluid Ratio (PPG): %s\n", formatRatio(result.ProppantToFluidRatio))
	text += fmt.Sprintf("  Gas Weight (lbs): %s\n", formatOptionalQuantity(result.GasWeightLbs))
	text += fmt.Sprintf("  Total Volume of Nitrogen (SCF): %s\n", formatOptionalQuantity(result.NitrogenVolumeSCF))
	text += fmt.Sprintf("  Total Weight of CO2 (tons): %s\n", formatOptionalQuantity(result.CO2WeightTons))
	text += fmt.Sprintf("  Remark: %s\n", result.Remark)
	return text
}

func (s *Server) formatBatchResult(directory string, batch *disclosure.BatchResult) string {
	text := fmt.Sprintf("Batch results for directory: %s\n", directory)
	text += fmt.Sprintf("Processed: %d, Failed: %d\n", len(batch.Rows), len(batch.Errors))

	for i, row := range batch.Rows {
		text += fmt.Sprintf("\n--- %d. %s ---\n", i+1, row.Path)
		text += s.formatCalculationResult(row.Result, row.MassBalance)
	}

	if len(batch.Errors) > 0 {
		text += "\nFailed documents:\n"
		for _, batchErr := range batch.Errors {
			text += fmt.Sprintf("  %s: %s\n", batchErr.Path, batchErr.Error)
		}
	}

	return text
}

func (s *Server) formatSearchDirectoryResult(result *pdf.SearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d disclosure PDF(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

func (s *Server) formatServerInfo() string {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Default disclosure directory: %s\n", s.config.DisclosureDirectory)
	text += fmt.Sprintf("Max file size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))

	result, err := s.disclosureService.SearchDirectory(pdf.SearchDirectoryRequest{
		Directory: s.config.DisclosureDirectory,
	})
	if err != nil {
		text += fmt.Sprintf("Directory contents: unavailable (%v)\n\n", err)
	} else if result.TotalCount == 0 {
		text += "Directory contents: no disclosure PDFs found\n\n"
	} else {
		text += fmt.Sprintf("Directory contents (%d disclosure PDFs):\n", result.TotalCount)
		for i, file := range result.Files {
			if i >= 10 { // Limit to first 10 files for readability
				text += fmt.Sprintf("   ... and %d more files\n", result.TotalCount-10)
				break
			}
			text += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		text += "\n"
	}

	text += "Available tools:\n"
	tools := []struct{ name, usage string }{
		{"frac_extract_file", "Extract water volume and concentrations from a disclosure PDF (path)"},
		{"frac_calculate", "Run the fluid calculation from explicit values (volumes and percents)"},
		{"frac_process_file", "Extract then calculate in one call; overrides beat extracted values (path + optional overrides)"},
		{"frac_batch_directory", "Process every disclosure PDF in a directory (directory, optional)"},
		{"frac_validate_file", "Check a file is a readable disclosure PDF (path)"},
		{"frac_search_directory", "List disclosure PDFs in a directory (directory + optional query)"},
		{"frac_server_info", "This information"},
	}
	for _, tool := range tools {
		text += fmt.Sprintf("  %s - %s\n", tool.name, tool.usage)
	}

	text += "\nGas concentrations are never extracted from documents; pass gas_type and " +
		"gas_percent explicitly for energized jobs. A total mass percent outside 90-110 " +
		"is flagged as out_of_range but never blocks the calculation.\n"

	return text
}

func formatOptionalPercent(value *float64) string {
	if value == nil {
		return "not found"
	}
	return fmt.Sprintf("%.5f", *value)
}

func formatOptionalQuantity(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *value)
}

func formatRatio(value float64) string {
	if math.IsNaN(value) {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", value)
}

// Run starts the MCP server on stdio
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting FracFocus MCP server in stdio mode")
		log.Printf("Disclosure directory: %s", s.config.DisclosureDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
