package utils

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hariprabhu571/npc-backend/models"
	"github.com/jung-kurt/gofpdf"
)

// BuildInvoicePDF renders the invoice document for a booking. The booking must
// have its User, Address and Items loaded. The same bytes back the invoice
// download and the confirmation email attachment.
func BuildInvoicePDF(booking *models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Company info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "NPC Pest Control")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "45 Service Road, Chennai, India")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@npcpestcontrol.in | Phone: +91-98765-43210")
	pdf.Ln(12)

	// Invoice title and booking info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Booking ID: "+strconv.Itoa(int(booking.ID)))
	pdf.Cell(60, 8, "Booked On: "+booking.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(50, 8, "Service: "+booking.ServiceName)
	pdf.Cell(60, 8, "Status: "+booking.Status)
	pdf.Ln(8)
	pdf.Cell(50, 8, "Service Date: "+booking.ServiceDate.Format("2006-01-02"))
	pdf.Cell(60, 8, "Time Slot: "+booking.TimeSlot)
	pdf.Ln(8)
	pdf.Cell(50, 8, "Payment Method: "+booking.PaymentMethod)
	pdf.Cell(60, 8, "Payment Status: "+booking.PaymentStatus)
	pdf.Ln(8)

	// Customer info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, booking.User.FirstName+" "+booking.User.LastName)
	pdf.Ln(6)
	pdf.Cell(100, 8, booking.User.Email)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Phone: "+booking.User.Phone)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Service Address:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, booking.Address.Line1)
	pdf.Ln(6)
	if booking.Address.Line2 != "" {
		pdf.Cell(100, 8, booking.Address.Line2)
		pdf.Ln(6)
	}
	// Free-text addresses carry only Line1
	var locality []string
	for _, part := range []string{booking.Address.City, booking.Address.State, booking.Address.Country} {
		if part != "" {
			locality = append(locality, part)
		}
	}
	if len(locality) > 0 {
		line := strings.Join(locality, ", ")
		if booking.Address.PostalCode != "" {
			line += " - " + booking.Address.PostalCode
		}
		pdf.Cell(100, 8, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Items table header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(55, 8, "Treatment", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Room Size", "1", 0, "C", false, 0, "")
	pdf.CellFormat(15, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(27, 8, "Unit Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range booking.Items {
		pdf.CellFormat(55, 8, item.ServiceTypeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, item.RoomSize, "1", 0, "C", false, 0, "")
		pdf.CellFormat(15, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(27, 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 8, fmt.Sprintf("%.2f", item.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary section
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", booking.Subtotal), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Standard Discount:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("-%.2f", booking.StandardDiscount), "", 1, "R", false, 0, "")
	if booking.CouponDiscount > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(120, 8, "Coupon ("+booking.CouponCode+"):", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(30, 8, fmt.Sprintf("-%.2f", booking.CouponDiscount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(120, 10, "Grand Total:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f", booking.TotalAmount), "", 1, "R", false, 0, "")

	// Thank you note
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for choosing NPC Pest Control!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, WrapError(err, "failed to render invoice")
	}
	return buf.Bytes(), nil
}
