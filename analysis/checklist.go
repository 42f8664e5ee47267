package analysis

// Feature is one attribute of the tested sealant product that interviewees
// rate on the satisfaction scale. Keys are stable identifiers used to match
// model output against the checklist; labels are shown to the model in both
// English and Thai.
type Feature struct {
	Key     string
	LabelEN string
	LabelTH string
}

// Checklist is the fixed, ordered set of product features every analysis
// must cover. Reconciliation guarantees exactly one satisfaction entry per
// key, in this order.
var Checklist = []Feature{
	{Key: "adhesion", LabelEN: "Adhesion strength", LabelTH: "แรงยึดเกาะ"},
	{Key: "curing_speed", LabelEN: "Curing/drying speed", LabelTH: "ความเร็วในการแห้งตัว"},
	{Key: "odor", LabelEN: "Odor during application", LabelTH: "กลิ่นขณะใช้งาน"},
	{Key: "color_options", LabelEN: "Color options", LabelTH: "ตัวเลือกสี"},
	{Key: "texture", LabelEN: "Texture and consistency", LabelTH: "เนื้อสัมผัสและความข้น"},
	{Key: "ease_of_application", LabelEN: "Ease of application", LabelTH: "ความง่ายในการใช้งาน"},
	{Key: "tooling_smoothness", LabelEN: "Tooling smoothness", LabelTH: "ความเรียบเนียนในการปาดแต่ง"},
	{Key: "non_sag", LabelEN: "Non-sag on vertical joints", LabelTH: "การไม่ไหลย้อยบนแนวตั้ง"},
	{Key: "water_resistance", LabelEN: "Water resistance", LabelTH: "การกันน้ำ"},
	{Key: "mold_resistance", LabelEN: "Mold and mildew resistance", LabelTH: "การป้องกันเชื้อรา"},
	{Key: "flexibility", LabelEN: "Joint flexibility", LabelTH: "ความยืดหยุ่นของรอยต่อ"},
	{Key: "durability", LabelEN: "Long-term durability", LabelTH: "ความทนทานระยะยาว"},
	{Key: "paintability", LabelEN: "Paintability", LabelTH: "การทาสีทับได้"},
	{Key: "packaging_design", LabelEN: "Packaging design", LabelTH: "การออกแบบบรรจุภัณฑ์"},
	{Key: "nozzle_design", LabelEN: "Nozzle design", LabelTH: "การออกแบบหัวฉีด"},
	{Key: "price_value", LabelEN: "Value for money", LabelTH: "ความคุ้มค่าของราคา"},
	{Key: "brand_reputation", LabelEN: "Brand reputation", LabelTH: "ชื่อเสียงของแบรนด์"},
	{Key: "availability", LabelEN: "Availability in stores", LabelTH: "การหาซื้อได้ง่าย"},
}

// TechnicianType is one of the six professional-role archetypes an
// interviewee can be classified as.
type TechnicianType struct {
	Key     string
	LabelEN string
	LabelTH string
}

// TechnicianTypes lists the archetypes used by the classification task.
// The model must pick exactly one.
var TechnicianTypes = []TechnicianType{
	{Key: "glass_aluminum", LabelEN: "Glass and aluminum installer", LabelTH: "ช่างกระจกอลูมิเนียม"},
	{Key: "construction_contractor", LabelEN: "Construction contractor", LabelTH: "ผู้รับเหมาก่อสร้าง"},
	{Key: "plumber", LabelEN: "Plumbing technician", LabelTH: "ช่างประปา"},
	{Key: "roofing_waterproofing", LabelEN: "Roofing and waterproofing technician", LabelTH: "ช่างหลังคาและงานกันซึม"},
	{Key: "furniture_builtin", LabelEN: "Furniture and built-in technician", LabelTH: "ช่างเฟอร์นิเจอร์และบิวท์อิน"},
	{Key: "general_handyman", LabelEN: "General handyman", LabelTH: "ช่างทั่วไป"},
}
