// Code generated by ent, DO NOT EDIT.

package ent

import (
	"invoice-tracker/db/ent/schema"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/party"
	"invoice-tracker/gen/ent/uploadjob"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescDocType is the schema descriptor for doc_type field.
	invoiceDescDocType := invoiceFields[1].Descriptor()
	// invoice.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	invoice.DocTypeValidator = func() func(string) error {
		validators := invoiceDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescInvoiceClass is the schema descriptor for invoice_class field.
	invoiceDescInvoiceClass := invoiceFields[2].Descriptor()
	// invoice.DefaultInvoiceClass holds the default value on creation for the invoice_class field.
	invoice.DefaultInvoiceClass = invoiceDescInvoiceClass.Default.(string)
	// invoice.InvoiceClassValidator is a validator for the "invoice_class" field. It is called by the builders before save.
	invoice.InvoiceClassValidator = invoiceDescInvoiceClass.Validators[0].(func(string) error)
	// invoiceDescPartyName is the schema descriptor for party_name field.
	invoiceDescPartyName := invoiceFields[6].Descriptor()
	// invoice.PartyNameValidator is a validator for the "party_name" field. It is called by the builders before save.
	invoice.PartyNameValidator = invoiceDescPartyName.Validators[0].(func(string) error)
	// invoiceDescSubtotal is the schema descriptor for subtotal field.
	invoiceDescSubtotal := invoiceFields[8].Descriptor()
	// invoice.DefaultSubtotal holds the default value on creation for the subtotal field.
	invoice.DefaultSubtotal = invoiceDescSubtotal.Default.(string)
	// invoiceDescTaxAmount is the schema descriptor for tax_amount field.
	invoiceDescTaxAmount := invoiceFields[9].Descriptor()
	// invoice.DefaultTaxAmount holds the default value on creation for the tax_amount field.
	invoice.DefaultTaxAmount = invoiceDescTaxAmount.Default.(string)
	// invoiceDescOtherTaxes is the schema descriptor for other_taxes field.
	invoiceDescOtherTaxes := invoiceFields[10].Descriptor()
	// invoice.DefaultOtherTaxes holds the default value on creation for the other_taxes field.
	invoice.DefaultOtherTaxes = invoiceDescOtherTaxes.Default.(string)
	// invoiceDescPaymentStatus is the schema descriptor for payment_status field.
	invoiceDescPaymentStatus := invoiceFields[12].Descriptor()
	// invoice.DefaultPaymentStatus holds the default value on creation for the payment_status field.
	invoice.DefaultPaymentStatus = invoiceDescPaymentStatus.Default.(string)
	// invoice.PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	invoice.PaymentStatusValidator = invoiceDescPaymentStatus.Validators[0].(func(string) error)
	// invoiceDescOwnerID is the schema descriptor for owner_id field.
	invoiceDescOwnerID := invoiceFields[13].Descriptor()
	// invoice.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	invoice.OwnerIDValidator = invoiceDescOwnerID.Validators[0].(func(string) error)
	// invoiceDescFingerprint is the schema descriptor for fingerprint field.
	invoiceDescFingerprint := invoiceFields[18].Descriptor()
	// invoice.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	invoice.FingerprintValidator = invoiceDescFingerprint.Validators[0].(func(string) error)
	// invoiceDescSource is the schema descriptor for source field.
	invoiceDescSource := invoiceFields[20].Descriptor()
	// invoice.DefaultSource holds the default value on creation for the source field.
	invoice.DefaultSource = invoiceDescSource.Default.(string)
	// invoice.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	invoice.SourceValidator = invoiceDescSource.Validators[0].(func(string) error)
	// invoiceDescNeedsReview is the schema descriptor for needs_review field.
	invoiceDescNeedsReview := invoiceFields[21].Descriptor()
	// invoice.DefaultNeedsReview holds the default value on creation for the needs_review field.
	invoice.DefaultNeedsReview = invoiceDescNeedsReview.Default.(bool)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[22].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[23].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	partyFields := schema.Party{}.Fields()
	_ = partyFields
	// partyDescName is the schema descriptor for name field.
	partyDescName := partyFields[1].Descriptor()
	// party.NameValidator is a validator for the "name" field. It is called by the builders before save.
	party.NameValidator = partyDescName.Validators[0].(func(string) error)
	// partyDescKind is the schema descriptor for kind field.
	partyDescKind := partyFields[2].Descriptor()
	// party.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	party.KindValidator = func() func(string) error {
		validators := partyDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// partyDescCreatedAt is the schema descriptor for created_at field.
	partyDescCreatedAt := partyFields[4].Descriptor()
	// party.DefaultCreatedAt holds the default value on creation for the created_at field.
	party.DefaultCreatedAt = partyDescCreatedAt.Default.(func() time.Time)
	// partyDescID is the schema descriptor for id field.
	partyDescID := partyFields[0].Descriptor()
	// party.DefaultID holds the default value on creation for the id field.
	party.DefaultID = partyDescID.Default.(func() uuid.UUID)
	uploadjobFields := schema.UploadJob{}.Fields()
	_ = uploadjobFields
	// uploadjobDescOwnerID is the schema descriptor for owner_id field.
	uploadjobDescOwnerID := uploadjobFields[1].Descriptor()
	// uploadjob.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	uploadjob.OwnerIDValidator = uploadjobDescOwnerID.Validators[0].(func(string) error)
	// uploadjobDescFileName is the schema descriptor for file_name field.
	uploadjobDescFileName := uploadjobFields[3].Descriptor()
	// uploadjob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	uploadjob.FileNameValidator = uploadjobDescFileName.Validators[0].(func(string) error)
	// uploadjobDescFingerprint is the schema descriptor for fingerprint field.
	uploadjobDescFingerprint := uploadjobFields[5].Descriptor()
	// uploadjob.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	uploadjob.FingerprintValidator = func() func(string) error {
		validators := uploadjobDescFingerprint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fingerprint string) error {
			for _, fn := range fns {
				if err := fn(fingerprint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// uploadjobDescFilePath is the schema descriptor for file_path field.
	uploadjobDescFilePath := uploadjobFields[6].Descriptor()
	// uploadjob.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	uploadjob.FilePathValidator = uploadjobDescFilePath.Validators[0].(func(string) error)
	// uploadjobDescStatus is the schema descriptor for status field.
	uploadjobDescStatus := uploadjobFields[7].Descriptor()
	// uploadjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	uploadjob.StatusValidator = func() func(string) error {
		validators := uploadjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// uploadjobDescCreatedAt is the schema descriptor for created_at field.
	uploadjobDescCreatedAt := uploadjobFields[10].Descriptor()
	// uploadjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadjob.DefaultCreatedAt = uploadjobDescCreatedAt.Default.(func() time.Time)
	// uploadjobDescUpdatedAt is the schema descriptor for updated_at field.
	uploadjobDescUpdatedAt := uploadjobFields[11].Descriptor()
	// uploadjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	uploadjob.DefaultUpdatedAt = uploadjobDescUpdatedAt.Default.(func() time.Time)
	// uploadjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	uploadjob.UpdateDefaultUpdatedAt = uploadjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// uploadjobDescID is the schema descriptor for id field.
	uploadjobDescID := uploadjobFields[0].Descriptor()
	// uploadjob.DefaultID holds the default value on creation for the id field.
	uploadjob.DefaultID = uploadjobDescID.Default.(func() uuid.UUID)
}
