package text

// origCharset mirrors the original game font (a variant of DOS code page 437).
// altCharset is designed for a replacement font (a variant of DOS code page 850).
// Both index printable bytes 0x20-0xff (224 entries) to a Unicode code point.
const origCharsetRunes = ` !"#$%&'()*+,-./0123456789:★<=>?「ABCDEFGHIJKLMNOPQRSTUVWXYZ[♂]』_` + "`" + `abcdefghijklmnopqrstuvwxyz{♀}『 ÇüéâäàåçêëèïîìÄÅÉæÆôöòûùÿÖÜ¢£¥▯ƒáíóúñÑªº¿▯¬½¼¡«»▯▯▯▯▯Á▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯▯Í▯▯▯▯▯▯▯▯▯▯ß▯¶▯▯µ▯▯Ú▯▯▯▯▯▯▯±▯▯▯▯÷▯°∙▯▯▯▯▯▯`

const altCharsetRunes = ` !"#$%&'()*+,-./0123456789:★<=>?“ABCDEFGHIJKLMNOPQRSTUVWXYZ[♂]’_”abcdefghijklmnopqrstuvwxyz{♀}‘ ÇüéâäàåçêëèïîìÄÅÉæÆôöòûùÿÖÜø£Ø▯ƒáíóúñÑªº¿▯~½¼¡«»▯▯▯▯▯ÁÂÀ▯▯▯▯▯▯▯▯▯▯▯▯▯▯ãÃ▯▯▯▯▯▯▯▯ðÐÊËÈ▯ÍÎÏ▯▯▯▯▯Ì▯ÓßÔÒõÕµþÞÚÛÙýÝœŒ▯±…▯▯▯÷▯°∙▯▯▯▯▯▯`
