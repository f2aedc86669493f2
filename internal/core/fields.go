package core

// Field names carried by extracted records. The prefix encodes the source
// document: inv_ invoice, pl_ packing list, bl_ bill of lading, coo_
// certificate of origin, po_ purchase order master.
const (
	FieldMatchScore       = "match_score"
	FieldMatchDescription = "match_description"

	FieldInvInvoiceNo     = "inv_invoice_no"
	FieldInvInvoiceDate   = "inv_invoice_date"
	FieldInvCustomerPONo  = "inv_customer_po_no"
	FieldInvVendorName    = "inv_vendor_name"
	FieldInvVendorAddress = "inv_vendor_address"
	FieldInvIncoterms     = "inv_incoterms_terms"
	FieldInvTerms         = "inv_terms"
	FieldInvCOOOrigin     = "inv_coo_commodity_origin"
	FieldInvSeq           = "inv_seq"
	FieldInvSpartItemNo   = "inv_spart_item_no"
	FieldInvDescription   = "inv_description"
	FieldInvQuantity      = "inv_quantity"
	FieldInvQuantityUnit  = "inv_quantity_unit"
	FieldInvUnitPrice     = "inv_unit_price"
	FieldInvPriceUnit     = "inv_price_unit"
	FieldInvAmount        = "inv_amount"
	FieldInvAmountUnit    = "inv_amount_unit"
	FieldInvTotalQuantity = "inv_total_quantity"
	FieldInvTotalAmount   = "inv_total_amount"
	FieldInvTotalNW       = "inv_total_nw"
	FieldInvTotalGW       = "inv_total_gw"
	FieldInvTotalVolume   = "inv_total_volume"
	FieldInvTotalPackage  = "inv_total_package"

	FieldPLInvoiceNo     = "pl_invoice_no"
	FieldPLInvoiceDate   = "pl_invoice_date"
	FieldPLMessrs        = "pl_messrs"
	FieldPLMessrsAddress = "pl_messrs_address"
	FieldPLItemNo        = "pl_item_no"
	FieldPLDescription   = "pl_description"
	FieldPLQuantity      = "pl_quantity"
	FieldPLPackageUnit   = "pl_package_unit"
	FieldPLPackageCount  = "pl_package_count"
	FieldPLWeightUnit    = "pl_weight_unit"
	FieldPLNW            = "pl_nw"
	FieldPLGW            = "pl_gw"
	FieldPLVolumeUnit    = "pl_volume_unit"
	FieldPLVolume        = "pl_volume"
	FieldPLTotalQuantity = "pl_total_quantity"
	FieldPLTotalAmount   = "pl_total_amount"
	FieldPLTotalNW       = "pl_total_nw"
	FieldPLTotalGW       = "pl_total_gw"
	FieldPLTotalVolume   = "pl_total_volume"
	FieldPLTotalPackage  = "pl_total_package"

	FieldBLNo              = "bl_no"
	FieldBLDate            = "bl_date"
	FieldBLShipperName     = "bl_shipper_name"
	FieldBLShipperAddress  = "bl_shipper_address"
	FieldBLSellerName      = "bl_seller_name"
	FieldBLSellerAddress   = "bl_seller_address"
	FieldBLConsigneeName   = "bl_consignee_name"
	FieldBLPortOfLoading   = "bl_port_of_loading"
	FieldBLPortOfDischarge = "bl_port_of_discharge"

	FieldCOONo           = "coo_no"
	FieldCOOCriteria     = "coo_criteria"
	FieldCOOQuantity     = "coo_quantity"
	FieldCOOQuantityUnit = "coo_quantity_unit"
	FieldCOOAmount       = "coo_amount"
	FieldCOOAmountUnit   = "coo_amount_unit"
	FieldCOOGW           = "coo_gw"
	FieldCOOGWUnit       = "coo_gw_unit"

	FieldPONo                 = "po_no"
	FieldPOVendorArticleNo    = "po_vendor_article_no"
	FieldPOText               = "po_text"
	FieldPOSAPArticleNo       = "po_sap_article_no"
	FieldPOLine               = "po_line"
	FieldPOQuantity           = "po_quantity"
	FieldPOUnit               = "po_unit"
	FieldPOPrice              = "po_price"
	FieldPOCurrency           = "po_currency"
	FieldPOInfoRecordPrice    = "po_info_record_price"
	FieldPOInfoRecordCurrency = "po_info_record_currency"
)
