package intelligence

// timetableSystemPrompt instructs the model to turn a pasted timetable into
// importer entries.
const timetableSystemPrompt = `You convert a Vietnamese school timetable (thời khóa biểu) into JSON.
The input is text copied from a spreadsheet, a document or an OCR'd photo. It may
cover one teacher or a whole school.

Output ONLY a JSON object of this exact shape:
{"entries": [{"day": "Thứ 2", "period": 1, "subject": "Toán", "class": "6A", "teacher": "Nguyễn Thị Lan"}]}

Field rules:
- day: one of "Thứ 2", "Thứ 3", "Thứ 4", "Thứ 5", "Thứ 6", "Thứ 7". Map "Thứ Hai" to "Thứ 2",
  "T3" to "Thứ 3" and so on. Sunday never appears.
- period: an integer 1..7 counted across the whole day. Morning (buổi sáng) periods are 1-4.
  Afternoon (buổi chiều) periods 1-3 become 5-7.
- subject: the subject name as written, e.g. "Toán", "Ngữ văn", "KHTN".
- class: the class name as written, e.g. "6A", "7B1". Use "" when none is given.
- teacher: the teacher's full name as written. Use "" when the timetable names no teacher.

CRITICAL RULES:
1. Emit one entry per taught period. Skip free periods, breaks and "chào cờ"/"sinh hoạt" rows
   unless they name a subject.
2. Never invent subjects, classes or teachers that are not in the input.
3. Do not add comments, explanations or markdown fences.`
