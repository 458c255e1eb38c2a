package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/fbarros/fatura/internal/model"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes formatting issues banks routinely ship: leading
// blank lines, mixed-case SEVERITY values, and SGML tags missing their
// closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRegex.ReplaceAllString(content, "$1>")
}

// ParseOFX extracts credit-card and bank statement lines from an OFX/QFX
// file. Statements that fail to convert are reported as skipped
// diagnostics, mirroring ParseCSV.
func ParseOFX(r io.Reader) (Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var result Result
	statements := 0

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		statements++
		for _, ofxTx := range stmt.BankTranList.Transactions {
			result.Transactions = append(result.Transactions, convertOFX(ofxTx))
		}
	}

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		statements++
		for _, ofxTx := range stmt.BankTranList.Transactions {
			result.Transactions = append(result.Transactions, convertOFX(ofxTx))
		}
	}

	if statements == 0 {
		result.Skipped = append(result.Skipped, SkippedRecord{
			Line:   0,
			Reason: "no bank or credit card statements in file",
		})
	}

	slog.Debug("parsed OFX file",
		"statements", statements,
		"transactions", len(result.Transactions))

	return result, nil
}

// convertOFX maps one OFX transaction onto the engine's shape. OFX uses
// negative amounts for debits; only the magnitude is kept.
func convertOFX(ofxTx ofxgo.Transaction) model.Transaction {
	description := string(ofxTx.Name)
	if ofxTx.Payee != nil && ofxTx.Payee.Name != "" {
		description = string(ofxTx.Payee.Name)
	}
	if description == "" && ofxTx.Memo != "" {
		description = string(ofxTx.Memo)
	}

	amount, _ := ofxTx.TrnAmt.Float64()
	if amount < 0 {
		amount = -amount
	}

	return model.Transaction{
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Date:        ofxTx.DtPosted.Format("2006-01-02"),
	}
}
