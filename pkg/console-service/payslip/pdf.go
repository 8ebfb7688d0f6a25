package payslip

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"innomatrics.com/go-api/pkg/shared/helper"
)

var companyName = helper.GetenvStr("COMPANY_NAME", "INNOMATRICS TECHNOLOGIES")
var companyAddress = helper.GetenvStr("COMPANY_ADDRESS",
	"2nd Floor, Akshay Complex, No. 01, 16th Main Rd, near Bharat Petroleum, BTM 2nd Stage, Bengaluru, Karnataka 560076")

type slipPdf struct {
	*gofpdf.Fpdf
}

// GeneratePayslipPDF renders the slip, uploads it and returns the stored
// file details.
func GeneratePayslipPDF(r Record) (map[string]interface{}, error) {
	sum := Summarize(r)

	pdf := slipPdf{gofpdf.New("P", "mm", "A4", "")}
	pdf.AddPage()
	pdf.SetFillColor(240, 240, 240)

	// Header
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(120, 8, fmt.Sprintf("PAYSLIP %s %s", r.Month, r.Year))
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(120, 7, companyName)
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(120, 5, companyAddress, "", "", false)
	pdf.Ln(4)

	// Employee name banner
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 10, strings.ToUpper(r.EmployeeName), "1", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Employee details
	pdf.detailRow("Employee Number", r.EmployeeNumber, "Date Joined", r.DateJoined)
	pdf.detailRow("Department", r.Department, "Sub-Department", r.SubDepartment)
	pdf.detailRow("Designation", r.Designation, "Secondary Job Title", r.SecondaryJobTitle)
	pdf.detailRow("Payment Mode", r.PaymentMode, "Bank", r.BankName)
	pdf.detailRow("Bank IFSC", r.BankIFSC, "Bank Account", r.BankAccount)
	pdf.Ln(6)

	// Salary details
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, "SALARY DETAILS", "0", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(47.5, 8, "Actual Payable Days: "+r.PayableDays, "1", 0, "C", false, 0, "")
	pdf.CellFormat(47.5, 8, "Total Working Days: "+r.TotalWorkingDays, "1", 0, "C", false, 0, "")
	pdf.CellFormat(47.5, 8, "Loss Of Pay Days: "+r.LossOfPayDays, "1", 0, "C", false, 0, "")
	pdf.CellFormat(47.5, 8, "Days Payable: "+r.DaysPayable, "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Earnings and deductions, side by side
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 8, "EARNINGS", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 8, "TAXES & DEDUCTIONS", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.amountRow("Basic", r.Earnings.Basic, "Professional Tax", r.Deductions.ProfessionalTax)
	pdf.amountRow("House Rent Allowance", r.Earnings.HRA, "Labour Welfare Fund", r.Deductions.LWF)
	pdf.amountRow("Dearness Allowance", r.Earnings.DA, "", "")
	pdf.amountRow("Travelling Allowance", r.Earnings.TA, "", "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(55, 8, "Total Earnings", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, FormatCurrency(sum.TotalEarnings), "1", 0, "R", false, 0, "")
	pdf.CellFormat(55, 8, "Total Taxes & Deductions", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, FormatCurrency(sum.WelfareSubtotal+sum.TaxSubtotal), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Net pay
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 9, "Net Salary Payable (Total Earnings - Deductions) : Rs. "+FormatCurrency(sum.NetPay), "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 8, "Net Salary in words: "+sum.NetPayWords+" Rupees only", "0", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(190, 6, "Note: All amounts displayed in this payslip are in INR", "0", 1, "C", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}

	safeTime := strings.NewReplacer(" ", "_", "-", "_", ":", "_").Replace(time.Now().Format("02-01-2006 15:04"))
	storageName := fmt.Sprintf("PAYSLIP_%s__%s", helper.NewShortId(), safeTime)

	link, err := helper.UploadFile(bucketName(), storagePath(storageName), buffer.Bytes())
	if err != nil {
		return nil, helper.Unexpected(err.Error())
	}

	return map[string]interface{}{
		"_id":          helper.NewDocId(),
		"category":     "payslip",
		"file_name":    fmt.Sprintf("payslip-%s-%s.pdf", r.Month, r.EmployeeName),
		"storage_name": storageName,
		"file_path":    link,
		"active":       "Y",
	}, nil
}

func bucketName() string {
	return helper.GetenvStr("S3_BUCKET", "innomatrics")
}

func storagePath(storageName string) string {
	return fmt.Sprintf("/uploads/system/payslip/%s.pdf", storageName)
}

func (pdf *slipPdf) detailRow(k1, v1, k2, v2 string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(45, 8, k1, "1", 0, "L", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(50, 8, v1, "1", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(45, 8, k2, "1", 0, "L", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(50, 8, v2, "1", 1, "L", false, 0, "")
}

func (pdf *slipPdf) amountRow(k1, v1, k2, v2 string) {
	pdf.CellFormat(55, 7, k1, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, amountCell(v1), "1", 0, "R", false, 0, "")
	pdf.CellFormat(55, 7, k2, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, amountCell(v2), "1", 1, "R", false, 0, "")
}

func amountCell(v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return FormatCurrency(ParseAmount(v))
}
