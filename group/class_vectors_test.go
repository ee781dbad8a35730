// Copyright © 2019 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package group

// Ground-truth class group vectors checked against Chia's sample
// implementation in python:
// https://github.com/Chia-Network/vdf-competition/blob/master/inkfish/classgroup.py.
var (
	toReduceA = "591622449216197258120089391432207181572679374270745984479112414101314701592477848522107674" +
		"496756100372887295518141911986241641798660763521874054424965681889882724221330887550366991" +
		"453623858407722364030436647784154711966786382417857735305311987204975806227417098805337249" +
		"042201223588540680465532198634196097774987618046254796507721237545238070019766545882259089" +
		"280223674368"

	toReduceB = "187603510950048397551935321648566056505903066271692489641008842956528389058281589412337386" +
		"131758218492537483291023195049584101909528202205035701139205765426769286592118075901999410" +
		"279581958953854463724442618850228006534542091014979635888098195727035794840852789133546213" +
		"713622853411382996915879532492701884293934171321108412598131229456265154778657668960562807" +
		"2971047864713"

	toReduceC = "148722708914328030547911757276946310957559649433583944113141107834045777141021703797003652" +
		"565996790494938248627428035900794617126911460983974708408965600343323158582218211030767769" +
		"071232773151166323373851012040552328913614054286359720405962054503167470120807948386912805" +
		"478941282467416010887550873592345541413469808372923423202881113971752202960986298901084593" +
		"0564341935336"

	reducedGroundTruthA = "268889359618240812325971125405098245046140700597762733471368889211154975220702870098416886" +
		"629830663760190795933722965564208484467803699188093841191247838702907788754244684979615596" +
		"438079183988609285780270380141126415298938171092408525441583092920253211226807479899875600" +
		"29531021808743313150630063377037854944"

	reducedGroundTruthB = "145299851964819993939951543633271001844072328925595611361407924092623288674401674808228084" +
		"968539245477512983429806060341241125798352557338247900201190785883725932882106282559566052" +
		"401717447034184260920733475843578268628137331543387371489622126414447357170234022015691153" +
		"2358081454099903972209626147819759991"

	reducedGroundTruthC = "284672665022671275914202890071658197492314335860930614787725604290582311378560461303844928" +
		"118164569332860394689409501292633009337238392120863993757807960416345313833429029187190734" +
		"160876144568452059802270914039642858701072689171832440166359079268462718293746791248483884" +
		"034866561564478239095738726823372184204"

	unnormalizedA = "16"

	unnormalizedB = "105"

	unnormalizedC = "478376078668867561673338398692512737742076193377579185979952947778162500583311163253410181" +
		"106720472171123774764735020601213528425753087932376215639471576300984851315174010737751911" +
		"943195315494838983347421441386016611204764255243332731221321519278338873239699989557133287" +
		"835268541988713323133994893869976818275783179387921709187117946848593116974397265966565015" +
		"941384497394942286170683296647767144847422761580905834957146491938390841109871491186151583" +
		"613524884884020388947996954204832727089332397513638493972875716927368810312231404469265224" +
		"318597017389945629057462766047140854869124473221137588347335081555186814207"

	normalizedGroundTruthA = "16"

	normalizedGroundTruthB = "9"

	normalizedGroundTruthC = "478376078668867561673338398692512737742076193377579185979952947778162500583311163253410181" +
		"106720472171123774764735020601213528425753087932376215639471576300984851315174010737751911" +
		"943195315494838983347421441386016611204764255243332731221321519278338873239699989557133287" +
		"835268541988713323133994893869976818275783179387921709187117946848593116974397265966565015" +
		"941384497394942286170683296647767144847422761580905834957146491938390841109871491186151583" +
		"613524884884020388947996954204832727089332397513638493972875716927368810312231404469265224" +
		"318597017389945629057462766047140854869124473221137588347335081555186814036"

	opOperandXA = "4"

	opOperandXB = "1"

	opOperandXC = "191350431467547024669335359477005095096830477351031674391981179111265000233324465301364072" +
		"442688188868449509905894008240485411370301235172950486255788630520393940526069604295100764" +
		"777278126197935593338968576554406644481905702097333092488528607711335549295879995822853315" +
		"134107416795485329253597957547990727310313271755168683674847178739437246789758906386626006" +
		"376553798957976914468273318659106857938969104632362333982858596775356336443948596474460633" +
		"445409953953608155579198781681933090835732959005455397589150286770947524124892561787706089" +
		"7274388069559782516229851064188563419476497892884550353389340326220747256139"

	opOperandYA = "16"

	opOperandYB = "41"

	opOperandYC = "478376078668867561673338398692512737742076193377579185979952947778162500583311163253410181" +
		"106720472171123774764735020601213528425753087932376215639471576300984851315174010737751911" +
		"943195315494838983347421441386016611204764255243332731221321519278338873239699989557133287" +
		"835268541988713323133994893869976818275783179387921709187117946848593116974397265966565015" +
		"941384497394942286170683296647767144847422761580905834957146491938390841109871491186151583" +
		"613524884884020388947996954204832727089332397513638493972875716927368810312231404469265224" +
		"318597017389945629057462766047140854869124473221137588347335081555186814061"

	opGroundTruthA = "64"

	opGroundTruthB = "9"

	opGroundTruthC = "119594019667216890418334599673128184435519048344394796494988236944540625145827790813352545" +
		"276680118042780943691183755150303382106438271983094053909867894075246212828793502684437977" +
		"985798828873709745836855360346504152801191063810833182805330379819584718309924997389283321" +
		"958817135497178330783498723467494204568945794846980427296779486712148279243599316491641253" +
		"985346124348735571542670824161941786211855690395226458739286622984597710277467872796537895" +
		"903381221221005097236999238551208181772333099378409623493218929231842202578057851117316306" +
		"079649254347486407264365691511785213717281118305284397086833770388796703509"
)
