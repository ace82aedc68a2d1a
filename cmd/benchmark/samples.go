package main

// Sample is a benchmark input text.
type Sample struct {
	Name string
	Text string
}

// Samples are administrative and legal texts at increasing lengths, the
// kind of document the service is meant to make readable.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "Se ruega aporte la documentación acreditativa en el plazo de diez días hábiles.",
	},
	{
		Name: "short",
		Text: `Estimado/a ciudadano/a:

Le comunicamos que su solicitud de ayuda al alquiler ha sido admitida a trámite. Para continuar con el procedimiento deberá presentar, en el plazo de diez días hábiles contados a partir del día siguiente a la recepción de la presente notificación, el certificado de empadronamiento colectivo y la última declaración del IRPF. Transcurrido dicho plazo sin que se haya aportado la documentación requerida, se le tendrá por desistido de su petición.`,
	},
	{
		Name: "medium",
		Text: `CLÁUSULA CUARTA. FIANZA Y GARANTÍAS.

A la firma del presente contrato, el arrendatario hace entrega al arrendador de la cantidad equivalente a una mensualidad de renta en concepto de fianza legal, de conformidad con lo dispuesto en el artículo 36 de la Ley 29/1994, de 24 de noviembre, de Arrendamientos Urbanos. Dicha cantidad no devengará interés alguno y será restituida al arrendatario a la finalización del arrendamiento, una vez comprobado el buen estado de la vivienda y la inexistencia de cantidades pendientes de pago.

Adicionalmente, el arrendatario constituye una garantía adicional por importe de dos mensualidades, que podrá ser ejecutada por el arrendador en caso de impago de la renta o de cualesquiera otras cantidades cuyo pago corresponda al arrendatario en virtud del presente contrato. La ejecución de la garantía no eximirá al arrendatario de la obligación de reponerla en el plazo de treinta días naturales.`,
	},
	{
		Name: "long",
		Text: `RESOLUCIÓN DE LA DIRECCIÓN GENERAL DE SERVICIOS SOCIALES POR LA QUE SE RECONOCE EL DERECHO A LA PRESTACIÓN.

Vista la solicitud presentada por la persona interesada, y de conformidad con los siguientes antecedentes de hecho y fundamentos de derecho:

PRIMERO. Con fecha de registro de entrada en este organismo, la persona interesada formuló solicitud de reconocimiento del derecho a la prestación económica de carácter periódico, acompañando la documentación exigida por la normativa reguladora.

SEGUNDO. Examinada la documentación aportada, el órgano instructor ha verificado que la unidad de convivencia cumple los requisitos de residencia legal y efectiva, así como el límite de ingresos y patrimonio establecido reglamentariamente para el ejercicio en curso.

TERCERO. La cuantía mensual de la prestación se determina por la diferencia entre la renta garantizada correspondiente a la composición de la unidad de convivencia y los ingresos computables de la misma, con los incrementos que procedan por hijos menores a cargo o situaciones de discapacidad acreditada.

En su virtud, RESUELVO reconocer el derecho a la prestación con efectos económicos desde el día primero del mes siguiente a la fecha de la solicitud. Contra la presente resolución, que no agota la vía administrativa, podrá interponerse recurso de alzada ante la persona titular de la Consejería competente en el plazo de un mes contado desde el día siguiente al de su notificación, sin perjuicio de cualquier otro que estime procedente.`,
	},
}

// QualitySamples are short, single-purpose texts used by --quality to
// eyeball whether the output follows Lectura Fácil conventions.
var QualitySamples = []Sample{
	{
		Name: "passive voice",
		Text: "La solicitud deberá ser cumplimentada por el interesado y presentada en la sede electrónica.",
	},
	{
		Name: "legal reference",
		Text: "En virtud de lo dispuesto en el artículo 68 de la Ley 39/2015, se le requiere para que subsane la falta.",
	},
	{
		Name: "numbers and dates",
		Text: "El importe de 1.250,00 € deberá abonarse antes del 31/03, mediante domiciliación bancaria.",
	},
	{
		Name: "medical",
		Text: "Se recomienda la administración del fármaco por vía oral cada ocho horas, preferentemente en ayunas.",
	},
	{
		Name: "long sentence",
		Text: "Una vez recibida la notificación, y siempre que no se haya interpuesto recurso en plazo, la resolución devendrá firme y se procederá a su ejecución sin más trámite.",
	},
	{
		Name: "already simple",
		Text: "El centro de salud abre a las ocho.",
	},
}
