package region

import "regexp"

func mustRule(pattern, zh, en, flag string) Rule {
	return Rule{Pattern: regexp.MustCompile("(?i)" + pattern), ZH: zh, EN: en, Flag: flag}
}

// builtin is the fixed detection table. Order is priority: common landing
// regions first, then the long tail. Bare country codes are word-bounded so a
// code does not fire inside an unrelated token ("SA" in "LosAngeles").
var builtin = []Rule{
	mustRule(`香港|\bHKG?\b|Hong\s?Kong`, "香港", "Hong Kong", "🇭🇰"),
	mustRule(`台湾|臺灣|台北|新北|彰化|\bTWN?\b|Taiwan|Taipei`, "台湾", "Taiwan", "🇹🇼"),
	mustRule(`澳门|\bMAC\b|\bMO\b|Maca[ou]`, "澳门", "Macao", "🇲🇴"),
	mustRule(`新加坡|狮城|\bSGP?\b|Singapore`, "新加坡", "Singapore", "🇸🇬"),
	mustRule(`日本|东京|大阪|埼玉|\bJPN?\b|Japan|Tokyo|Osaka`, "日本", "Japan", "🇯🇵"),
	mustRule(`韩国|韓國|首尔|\bKOR?\b|\bKR\b|Korea|Seoul`, "韩国", "South Korea", "🇰🇷"),
	mustRule(`朝鲜|\bKP\b|North\s?Korea|Pyongyang`, "朝鲜", "North Korea", "🇰🇵"),
	mustRule(`美国|波特兰|俄勒冈|凤凰城|硅谷|洛杉矶|圣何塞|西雅图|芝加哥|\bUSA?\b|United\s?States|America|Los\s?Angeles|San\s?Jose|Silicon\s?Valley|Seattle|Chicago`, "美国", "United States", "🇺🇸"),
	mustRule(`英国|伦敦|\bUK\b|\bGBR?\b|United\s?Kingdom|Britain|London`, "英国", "United Kingdom", "🇬🇧"),
	mustRule(`加拿大|多伦多|温哥华|\bCAN?\b|Canada|Toronto|Vancouver`, "加拿大", "Canada", "🇨🇦"),
	mustRule(`德国|法兰克福|\bDEU?\b|\bGER\b|Germany|Frankfurt`, "德国", "Germany", "🇩🇪"),
	mustRule(`法国|巴黎|\bFRA?\b|France|Paris`, "法国", "France", "🇫🇷"),
	mustRule(`荷兰|阿姆斯特丹|\bNLD?\b|Netherlands|Amsterdam`, "荷兰", "Netherlands", "🇳🇱"),
	mustRule(`俄罗斯|莫斯科|圣彼得堡|\bRUS?\b|Russia|Moscow`, "俄罗斯", "Russia", "🇷🇺"),
	mustRule(`乌克兰|\bUKR\b|\bUA\b|Ukraine|Kyiv`, "乌克兰", "Ukraine", "🇺🇦"),
	mustRule(`波兰|\bPOL\b|\bPL\b|Poland|Warsaw`, "波兰", "Poland", "🇵🇱"),
	mustRule(`捷克|\bCZE?\b|Czech|Prague`, "捷克", "Czechia", "🇨🇿"),
	mustRule(`奥地利|维也纳|\bAUT\b|\bAT\b|Austria|Vienna`, "奥地利", "Austria", "🇦🇹"),
	mustRule(`瑞士|苏黎世|\bCHE\b|\bCH\b|Switzerland|Zurich`, "瑞士", "Switzerland", "🇨🇭"),
	mustRule(`意大利|米兰|\bITA\b|\bIT\b|Italy|Milan|Rome`, "意大利", "Italy", "🇮🇹"),
	mustRule(`西班牙|马德里|\bESP\b|\bES\b|Spain|Madrid`, "西班牙", "Spain", "🇪🇸"),
	mustRule(`葡萄牙|里斯本|\bPRT\b|\bPT\b|Portugal|Lisbon`, "葡萄牙", "Portugal", "🇵🇹"),
	mustRule(`希腊|雅典|\bGRC\b|\bGR\b|Greece|Athens`, "希腊", "Greece", "🇬🇷"),
	mustRule(`瑞典|斯德哥尔摩|\bSWE\b|\bSE\b|Sweden|Stockholm`, "瑞典", "Sweden", "🇸🇪"),
	mustRule(`挪威|奥斯陆|\bNOR\b|\bNO\b|Norway|Oslo`, "挪威", "Norway", "🇳🇴"),
	mustRule(`芬兰|赫尔辛基|\bFIN\b|\bFI\b|Finland|Helsinki`, "芬兰", "Finland", "🇫🇮"),
	mustRule(`丹麦|哥本哈根|\bDNK\b|\bDK\b|Denmark|Copenhagen`, "丹麦", "Denmark", "🇩🇰"),
	mustRule(`冰岛|\bISL\b|\bIS\b|Iceland|Reykjavik`, "冰岛", "Iceland", "🇮🇸"),
	mustRule(`爱尔兰|都柏林|\bIRL\b|\bIE\b|Ireland|Dublin`, "爱尔兰", "Ireland", "🇮🇪"),
	mustRule(`比利时|布鲁塞尔|\bBEL\b|\bBE\b|Belgium|Brussels`, "比利时", "Belgium", "🇧🇪"),
	mustRule(`卢森堡|\bLUX\b|\bLU\b|Luxembourg`, "卢森堡", "Luxembourg", "🇱🇺"),
	mustRule(`匈牙利|布达佩斯|\bHUN\b|\bHU\b|Hungary|Budapest`, "匈牙利", "Hungary", "🇭🇺"),
	mustRule(`罗马尼亚|\bROU\b|\bRO\b|Romania|Bucharest`, "罗马尼亚", "Romania", "🇷🇴"),
	mustRule(`保加利亚|\bBGR\b|\bBG\b|Bulgaria|Sofia`, "保加利亚", "Bulgaria", "🇧🇬"),
	mustRule(`土耳其|伊斯坦布尔|\bTUR\b|\bTR\b|Turkey|T\x{00FC}rkiye|Istanbul`, "土耳其", "Turkey", "🇹🇷"),
	mustRule(`以色列|特拉维夫|\bISR\b|\bIL\b|Israel|Tel\s?Aviv`, "以色列", "Israel", "🇮🇱"),
	mustRule(`阿联酋|迪拜|\bARE\b|\bAE\b|UAE|Emirates|Dubai`, "阿联酋", "United Arab Emirates", "🇦🇪"),
	mustRule(`沙特|利雅得|\bSAU\b|\bSA\b|Saudi|Riyadh`, "沙特", "Saudi Arabia", "🇸🇦"),
	mustRule(`印度|孟买|\bIND\b|\bIN\b|India|Mumbai|Delhi`, "印度", "India", "🇮🇳"),
	mustRule(`巴基斯坦|\bPAK\b|\bPK\b|Pakistan|Karachi`, "巴基斯坦", "Pakistan", "🇵🇰"),
	mustRule(`越南|河内|\bVNM\b|\bVN\b|Vietnam|Hanoi`, "越南", "Vietnam", "🇻🇳"),
	mustRule(`泰国|曼谷|\bTHA\b|\bTH\b|Thailand|Bangkok`, "泰国", "Thailand", "🇹🇭"),
	mustRule(`马来西亚|吉隆坡|\bMYS\b|\bMY\b|Malaysia|Kuala\s?Lumpur`, "马来西亚", "Malaysia", "🇲🇾"),
	mustRule(`菲律宾|马尼拉|\bPHL?\b|Philippines|Manila`, "菲律宾", "Philippines", "🇵🇭"),
	mustRule(`印度尼西亚|印尼|雅加达|\bIDN?\b|Indonesia|Jakarta`, "印度尼西亚", "Indonesia", "🇮🇩"),
	mustRule(`柬埔寨|金边|\bKHM\b|\bKH\b|Cambodia|Phnom\s?Penh`, "柬埔寨", "Cambodia", "🇰🇭"),
	mustRule(`澳大利亚|悉尼|墨尔本|\bAUS?\b|Australia|Sydney|Melbourne`, "澳大利亚", "Australia", "🇦🇺"),
	mustRule(`新西兰|奥克兰|\bNZL?\b|New\s?Zealand|Auckland`, "新西兰", "New Zealand", "🇳🇿"),
	mustRule(`巴西|圣保罗|\bBRA\b|\bBR\b|Brazil|S\x{00E3}o\s?Paulo|Sao\s?Paulo`, "巴西", "Brazil", "🇧🇷"),
	mustRule(`阿根廷|\bARG\b|\bAR\b|Argentina|Buenos\s?Aires`, "阿根廷", "Argentina", "🇦🇷"),
	mustRule(`智利|\bCHL\b|\bCL\b|Chile|Santiago`, "智利", "Chile", "🇨🇱"),
	mustRule(`墨西哥|\bMEX\b|\bMX\b|Mexico`, "墨西哥", "Mexico", "🇲🇽"),
	mustRule(`南非|约翰内斯堡|\bZAF?\b|South\s?Africa|Johannesburg`, "南非", "South Africa", "🇿🇦"),
	mustRule(`埃及|开罗|\bEGY?\b|Egypt|Cairo`, "埃及", "Egypt", "🇪🇬"),
	mustRule(`尼日利亚|\bNGA?\b|Nigeria|Lagos`, "尼日利亚", "Nigeria", "🇳🇬"),
}
